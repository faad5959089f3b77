package courier_get

import (
	"errors"
	"net/http"

	"lastmile/internal/handlers/rest/dto"
	"lastmile/internal/handlers/rest/respond"
	"lastmile/internal/service/courier"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		service: service,
		log:     handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r, "id")
	if err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, err)
		return
	}

	courierEntity, err := h.service.GetCourier(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, courier.ErrCourierNotFound):
			respond.Error(w, h.log, http.StatusNotFound, err)
		case errors.Is(err, courier.ErrInvalidCourierID):
			respond.Error(w, h.log, http.StatusBadRequest, err)
		default:
			respond.Error(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.FromCourier(courierEntity))
}
