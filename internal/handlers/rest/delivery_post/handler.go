package delivery_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"lastmile/internal/handlers/rest/dto"
	"lastmile/internal/handlers/rest/respond"
	"lastmile/internal/service/delivery"
	"lastmile/internal/service/fee"
	"lastmile/internal/service/ledger"
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
	var deliveryCreateDTO dto.DeliveryCreate
	err := json.NewDecoder(r.Body).Decode(&deliveryCreateDTO)
	if err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, err)
		return
	}

	created, err := h.service.CreateDelivery(r.Context(), deliveryCreateDTO.ToDomain())
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrInvalidCustomerID),
			errors.Is(err, delivery.ErrInvalidPoint),
			errors.Is(err, delivery.ErrInvalidItemClass),
			errors.Is(err, delivery.ErrInvalidVehicle),
			errors.Is(err, delivery.ErrInvalidUrgency),
			errors.Is(err, delivery.ErrInvalidScheduling),
			errors.Is(err, delivery.ErrInvalidPaymentMethod),
			errors.Is(err, delivery.ErrInvalidOverrideFee),
			errors.Is(err, fee.ErrInvalidDistance),
			errors.Is(err, fee.ErrUnknownItemClass):
			respond.Error(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, ledger.ErrOrderAlreadyExists):
			respond.Error(w, h.log, http.StatusConflict, err)
		default:
			respond.Error(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	response := dto.DeliveryCreateResponse{
		Delivery: dto.FromDelivery(created.Delivery),
		Order:    dto.FromOrder(created.Order),
		Payment:  dto.FromPayment(created.Payment),
	}

	respond.JSON(w, h.log, http.StatusCreated, response)
}
