package ping_get

import (
	"net/http"
	"time"

	"lastmile/internal/handlers/rest/dto"
	"lastmile/internal/handlers/rest/respond"
)

type Handler struct {
	log handlerLogger
	now func() time.Time
}

func New(log handlerLogger) *Handler {
	return NewWithClock(log, time.Now)
}

func NewWithClock(log handlerLogger, now func() time.Time) *Handler {
	return &Handler{
		log: log.With(),
		now: now,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	respond.JSON(w, h.log, http.StatusOK, dto.PingResponse{
		Message:    "pong",
		ServerTime: h.now().UTC(),
	})
}
