package payout_action_post

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"lastmile/internal/entities"
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
	id, err := respond.PathID(r, "id")
	if err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, err)
		return
	}
	action := entities.PayoutAction(mux.Vars(r)["action"])

	// тело необязательно: заметка нужна только при отклонении
	var actionDTO dto.PayoutAction
	if err := json.NewDecoder(r.Body).Decode(&actionDTO); err != nil && !errors.Is(err, io.EOF) {
		respond.Error(w, h.log, http.StatusBadRequest, err)
		return
	}

	result, err := h.service.ProcessPayout(r.Context(), id, action, actionDTO.Note)
	if err != nil {
		switch {
		case errors.Is(err, wallet.ErrInvalidPayoutID),
			errors.Is(err, wallet.ErrInvalidAction):
			respond.Error(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, wallet.ErrPayoutNotFound),
			errors.Is(err, wallet.ErrWalletNotFound):
			respond.Error(w, h.log, http.StatusNotFound, err)
		case errors.Is(err, wallet.ErrIllegalPayoutTransition):
			respond.Error(w, h.log, http.StatusConflict, err)
		default:
			respond.Error(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.FromPayoutResult(result))
}
