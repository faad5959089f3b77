package settlement_confirm_post

import (
	"errors"
	"net/http"

	"lastmile/internal/handlers/rest/dto"
	"lastmile/internal/handlers/rest/respond"
	"lastmile/internal/service/ledger"
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
	id, err := respond.PathID(r, "id")
	if err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, err)
		return
	}

	confirmation, err := h.service.ConfirmSettlement(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, wallet.ErrInvalidSettlementID):
			respond.Error(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, ledger.ErrSettlementNotFound),
			errors.Is(err, wallet.ErrWalletNotFound):
			respond.Error(w, h.log, http.StatusNotFound, err)
		case errors.Is(err, ledger.ErrSettlementNotPending):
			respond.Error(w, h.log, http.StatusConflict, err)
		case errors.Is(err, ledger.ErrInsufficientPending):
			respond.Error(w, h.log, http.StatusUnprocessableEntity, err)
		default:
			respond.Error(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.SettlementConfirmResponse{
		Settlement: *dto.FromSettlement(confirmation.Settlement),
		Wallet:     *dto.FromWallet(confirmation.Wallet),
	})
}
