package referral_policy_post

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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var policyDTO dto.RewardPolicyCreate
	if err := json.NewDecoder(r.Body).Decode(&policyDTO); err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, err)
		return
	}

	policy, err := h.service.ActivatePolicy(r.Context(), policyDTO.Rate)
	if err != nil {
		if errors.Is(err, referral.ErrInvalidRate) {
			respond.Error(w, h.log, http.StatusBadRequest, err)
			return
		}
		respond.Error(w, h.log, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, h.log, http.StatusCreated, dto.FromRewardPolicy(policy))
}
