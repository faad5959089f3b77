package delivery_cancel_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"lastmile/internal/entities"
	"lastmile/internal/handlers/rest/dto"
	"lastmile/internal/handlers/rest/respond"
	"lastmile/internal/service/delivery"
	"lastmile/pkg/logger"
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

	var cancelDTO dto.CancelRequest
	if err := json.NewDecoder(r.Body).Decode(&cancelDTO); err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, err)
		return
	}

	cancelled, err := h.service.CancelDelivery(r.Context(), entities.DeliveryCancel{
		DeliveryID: id,
		Actor:      entities.CancelActor(cancelDTO.Actor),
		ActorID:    cancelDTO.ActorID,
		Reason:     cancelDTO.Reason,
	})
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrInvalidDeliveryID),
			errors.Is(err, delivery.ErrInvalidActor),
			errors.Is(err, delivery.ErrInvalidCustomerID):
			respond.Error(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, delivery.ErrNotOwner):
			respond.Error(w, h.log, http.StatusForbidden, err)
		case errors.Is(err, delivery.ErrDeliveryNotFound):
			respond.Error(w, h.log, http.StatusNotFound, err)
		case errors.Is(err, delivery.ErrAlreadyDelivered),
			errors.Is(err, delivery.ErrAlreadyCancelled):
			respond.Error(w, h.log, http.StatusConflict, err)
		default:
			respond.Error(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	if cancelled.RefundFailed {
		h.log.Warn("delivery cancelled, refund pending retry", logger.NewField("delivery_id", id))
	}

	respond.JSON(w, h.log, http.StatusOK, dto.FromCancelled(cancelled))
}
