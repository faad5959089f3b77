package referral_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"lastmile/internal/handlers/rest/dto"
	"lastmile/internal/handlers/rest/respond"
	"lastmile/internal/service/referral"
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

// ServeHTTP: 201 для новой связи, 200 если клиент уже привязан (связь не меняется).
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var referralDTO dto.ReferralCreate
	if err := json.NewDecoder(r.Body).Decode(&referralDTO); err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, err)
		return
	}

	link, created, err := h.service.LinkReferral(r.Context(), referralDTO.CustomerID, referralDTO.CourierID)
	if err != nil {
		switch {
		case errors.Is(err, referral.ErrInvalidCustomerID),
			errors.Is(err, referral.ErrInvalidCourierID):
			respond.Error(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, referral.ErrCourierNotFound):
			respond.Error(w, h.log, http.StatusNotFound, err)
		default:
			respond.Error(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	respond.JSON(w, h.log, status, dto.FromReferralLink(link, created))
}
