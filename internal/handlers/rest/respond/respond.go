// Package respond пишет JSON-ответы REST-хендлеров.
package respond

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"lastmile/internal/handlers/rest/dto"
	"lastmile/pkg/logger"
)

var ErrInvalidPathParam = errors.New("invalid path parameter")

type errorLogger interface {
	Error(msg string, fields ...logger.Field)
}

func JSON(w http.ResponseWriter, log errorLogger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error("encode JSON response", logger.NewField("error", err))
	}
}

// Error отдает текст ошибки клиенту только для 4xx. Причину 5xx видно в логе.
func Error(w http.ResponseWriter, log errorLogger, status int, err error) {
	message := http.StatusText(status)
	if status < http.StatusInternalServerError {
		message = err.Error()
	} else {
		log.Error("request failed",
			logger.NewField("status", status),
			logger.NewField("error", err),
		)
	}

	JSON(w, log, status, dto.Error{Error: message})
}

// PathID читает int64 из переменной маршрута, знак проверяет сервис.
func PathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil {
		return 0, ErrInvalidPathParam
	}
	return id, nil
}
