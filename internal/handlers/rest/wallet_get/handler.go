package wallet_get

import (
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
	courierID, err := respond.PathID(r, "courier_id")
	if err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, err)
		return
	}

	walletEntity, err := h.service.GetWallet(r.Context(), courierID)
	if err != nil {
		switch {
		case errors.Is(err, wallet.ErrInvalidCourierID):
			respond.Error(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, wallet.ErrWalletNotFound):
			respond.Error(w, h.log, http.StatusNotFound, err)
		default:
			respond.Error(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.FromWallet(walletEntity))
}
