package payout_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"lastmile/internal/handlers/rest/dto"
	"lastmile/internal/handlers/rest/respond"
	"lastmile/internal/service/wallet"
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
	var payoutDTO dto.PayoutCreate
	if err := json.NewDecoder(r.Body).Decode(&payoutDTO); err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, err)
		return
	}

	result, err := h.service.RequestPayout(r.Context(), payoutDTO.CourierID, payoutDTO.Amount)
	if err != nil {
		switch {
		case errors.Is(err, wallet.ErrInvalidCourierID),
			errors.Is(err, wallet.ErrInvalidAmount):
			respond.Error(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, wallet.ErrWalletNotFound):
			respond.Error(w, h.log, http.StatusNotFound, err)
		case errors.Is(err, wallet.ErrPayoutInProgress):
			respond.Error(w, h.log, http.StatusConflict, err)
		case errors.Is(err, wallet.ErrBelowMinimumPayout),
			errors.Is(err, wallet.ErrInsufficientBalance):
			respond.Error(w, h.log, http.StatusUnprocessableEntity, err)
		default:
			respond.Error(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	respond.JSON(w, h.log, http.StatusCreated, dto.FromPayoutResult(result))
}
