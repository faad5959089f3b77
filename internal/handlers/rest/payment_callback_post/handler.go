package payment_callback_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"lastmile/internal/entities"
	"lastmile/internal/handlers/rest/dto"
	"lastmile/internal/handlers/rest/respond"
	"lastmile/internal/service/ledger"
	"lastmile/pkg/logger"
)

// Handler принимает результат платежа от шлюза.
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

	var callbackDTO dto.PaymentCallback
	if err := json.NewDecoder(r.Body).Decode(&callbackDTO); err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, err)
		return
	}

	payment, err := h.service.ApplyGatewayResult(r.Context(), entities.PaymentCallback{
		PaymentID:  id,
		Status:     entities.PaymentStatus(callbackDTO.Status),
		GatewayRef: callbackDTO.GatewayRef,
	})
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrInvalidPaymentID),
			errors.Is(err, ledger.ErrInvalidPaymentStatus):
			respond.Error(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, ledger.ErrPaymentNotFound):
			respond.Error(w, h.log, http.StatusNotFound, err)
		case errors.Is(err, ledger.ErrPaymentTerminal):
			// повторный колбэк шлюза - не ошибка шлюза, но менять нечего
			h.log.Info("callback for terminal payment ignored", logger.NewField("payment_id", id))
			respond.Error(w, h.log, http.StatusConflict, err)
		default:
			respond.Error(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.FromPayment(payment))
}
