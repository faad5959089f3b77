package candidates_get

import (
	"errors"
	"net/http"
	"strconv"

	"lastmile/internal/handlers/rest/dto"
	"lastmile/internal/handlers/rest/respond"
	"lastmile/internal/service/delivery"
	"lastmile/internal/service/matcher"
)

var ErrInvalidQuery = errors.New("invalid query parameter")

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

	// нулевые значения означают настройки матчера по умолчанию
	var (
		radiusKm float64
		limit    uint64
		notify   bool
	)
	query := r.URL.Query()
	if raw := query.Get("radius_km"); raw != "" {
		if radiusKm, err = strconv.ParseFloat(raw, 64); err != nil {
			respond.Error(w, h.log, http.StatusBadRequest, ErrInvalidQuery)
			return
		}
	}
	if raw := query.Get("limit"); raw != "" {
		if limit, err = strconv.ParseUint(raw, 10, 64); err != nil {
			respond.Error(w, h.log, http.StatusBadRequest, ErrInvalidQuery)
			return
		}
	}
	if raw := query.Get("notify"); raw != "" {
		if notify, err = strconv.ParseBool(raw); err != nil {
			respond.Error(w, h.log, http.StatusBadRequest, ErrInvalidQuery)
			return
		}
	}

	candidates, err := h.service.FindCandidates(r.Context(), id, radiusKm, limit, notify)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrInvalidDeliveryID),
			errors.Is(err, matcher.ErrInvalidOrigin),
			errors.Is(err, matcher.ErrInvalidRadius):
			respond.Error(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, delivery.ErrDeliveryNotFound):
			respond.Error(w, h.log, http.StatusNotFound, err)
		case errors.Is(err, delivery.ErrNotPending):
			respond.Error(w, h.log, http.StatusConflict, err)
		default:
			respond.Error(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.FromCandidates(candidates))
}
