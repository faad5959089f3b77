package delivery_accept_post

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

	var acceptDTO dto.AcceptRequest
	if err := json.NewDecoder(r.Body).Decode(&acceptDTO); err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, err)
		return
	}

	result, err := h.service.AcceptDelivery(r.Context(), id, acceptDTO.CourierID)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrInvalidDeliveryID),
			errors.Is(err, delivery.ErrInvalidCourierID):
			respond.Error(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, delivery.ErrAlreadyTaken):
			respond.JSON(w, h.log, http.StatusConflict, dto.AcceptResponse{Outcome: string(entities.AcceptAlreadyTaken)})
		case errors.Is(err, delivery.ErrDeliveryNotFound):
			respond.JSON(w, h.log, http.StatusNotFound, dto.AcceptResponse{Outcome: string(entities.AcceptNotFound)})
		case errors.Is(err, delivery.ErrCourierNotFound):
			respond.Error(w, h.log, http.StatusNotFound, err)
		default:
			respond.Error(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	accepted := dto.FromDelivery(result.Delivery)
	respond.JSON(w, h.log, http.StatusOK, dto.AcceptResponse{
		Outcome:  string(result.Outcome),
		Delivery: &accepted,
	})
}
