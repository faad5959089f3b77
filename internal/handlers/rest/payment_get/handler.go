package payment_get

import (
	"errors"
	"net/http"

	"lastmile/internal/handlers/rest/dto"
	"lastmile/internal/handlers/rest/respond"
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
	id, err := respond.PathID(r, "id")
	if err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, err)
		return
	}

	payment, err := h.service.GetPayment(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrInvalidPaymentID):
			respond.Error(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, ledger.ErrPaymentNotFound):
			respond.Error(w, h.log, http.StatusNotFound, err)
		default:
			respond.Error(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.FromPayment(payment))
}
