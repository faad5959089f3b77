package delivery_tasks_get

import (
	"errors"
	"net/http"

	"lastmile/internal/handlers/rest/dto"
	"lastmile/internal/handlers/rest/respond"
	"lastmile/internal/service/completion"
)

// Handler показывает состояние эффектов завершения доставки.
type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r, "id")
	if err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, err)
		return
	}

	tasks, err := h.service.ListTasks(r.Context(), id)
	if err != nil {
		if errors.Is(err, completion.ErrInvalidDeliveryID) {
			respond.Error(w, h.log, http.StatusBadRequest, err)
			return
		}
		respond.Error(w, h.log, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.FromCompletionTasks(tasks))
}
