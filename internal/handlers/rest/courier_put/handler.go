package courier_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"lastmile/internal/handlers/rest/dto"
	"lastmile/internal/handlers/rest/respond"
	"lastmile/internal/service/courier"
)

var ErrIDMismatch = errors.New("courier id in body does not match path")

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

// ServeHTTP обслуживает PUT /courier (id в теле) и PUT /courier/{id}.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var body dto.CourierUpdate
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, err)
		return
	}

	if _, ok := mux.Vars(r)["id"]; ok {
		pathID, err := respond.PathID(r, "id")
		if err != nil {
			respond.Error(w, h.log, http.StatusBadRequest, err)
			return
		}
		if body.ID != 0 && body.ID != pathID {
			respond.Error(w, h.log, http.StatusBadRequest, ErrIDMismatch)
			return
		}
		body.ID = pathID
	}

	updated, err := h.service.UpdateCourier(r.Context(), body.ToModify())
	switch {
	case err == nil:
		respond.JSON(w, h.log, http.StatusOK, dto.FromCourier(updated))
	case courier.IsValidationError(err):
		respond.Error(w, h.log, http.StatusBadRequest, err)
	case errors.Is(err, courier.ErrCourierNotFound):
		respond.Error(w, h.log, http.StatusNotFound, err)
	case errors.Is(err, courier.ErrConflict):
		respond.Error(w, h.log, http.StatusConflict, err)
	default:
		respond.Error(w, h.log, http.StatusInternalServerError, err)
	}
}
