package courier_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"lastmile/internal/handlers/rest/dto"
	"lastmile/internal/handlers/rest/respond"
	"lastmile/internal/service/courier"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	return &Handler{
		log:     log.With(),
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var body dto.CourierCreate
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, err)
		return
	}

	id, err := h.service.CreateCourier(r.Context(), body.ToModify())
	switch {
	case err == nil:
		respond.JSON(w, h.log, http.StatusCreated, dto.CourierCreateResponse{ID: id})
	case courier.IsValidationError(err):
		respond.Error(w, h.log, http.StatusBadRequest, err)
	case errors.Is(err, courier.ErrConflict):
		respond.Error(w, h.log, http.StatusConflict, err)
	default:
		respond.Error(w, h.log, http.StatusInternalServerError, err)
	}
}
