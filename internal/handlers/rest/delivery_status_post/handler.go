package delivery_status_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"lastmile/internal/entities"
	"lastmile/internal/handlers/rest/dto"
	"lastmile/internal/handlers/rest/respond"
	"lastmile/internal/service/delivery"
)

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

	var statusDTO dto.StatusRequest
	if err := json.NewDecoder(r.Body).Decode(&statusDTO); err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, err)
		return
	}

	updated, err := h.service.AdvanceStatus(r.Context(), id, statusDTO.CourierID, entities.DeliveryStatus(statusDTO.Status))
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrInvalidDeliveryID),
			errors.Is(err, delivery.ErrInvalidCourierID),
			errors.Is(err, delivery.ErrInvalidStatus):
			respond.Error(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, delivery.ErrNotAssignedCourier):
			respond.Error(w, h.log, http.StatusForbidden, err)
		case errors.Is(err, delivery.ErrDeliveryNotFound):
			respond.Error(w, h.log, http.StatusNotFound, err)
		case errors.Is(err, delivery.ErrIllegalTransition),
			errors.Is(err, delivery.ErrAlreadyDelivered),
			errors.Is(err, delivery.ErrAlreadyCancelled):
			respond.Error(w, h.log, http.StatusConflict, err)
		default:
			respond.Error(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.FromDelivery(updated))
}
