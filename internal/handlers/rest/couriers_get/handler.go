package couriers_get

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"lastmile/internal/entities"
	"lastmile/internal/handlers/rest/dto"
	"lastmile/internal/handlers/rest/respond"
	"lastmile/internal/service/courier"
)

const (
	defaultLimit uint64 = 100
	maxLimit     uint64 = 500
)

var ErrInvalidQuery = errors.New("invalid query parameter")

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

// ServeHTTP: GET /couriers?status=&transport_type=&located=&limit=&offset=
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r.URL.Query())
	if err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, err)
		return
	}

	couriers, err := h.service.GetCouriers(r.Context(), filter)
	switch {
	case errors.Is(err, courier.ErrInvalidStatus), errors.Is(err, courier.ErrInvalidTransport):
		respond.Error(w, h.log, http.StatusBadRequest, err)
	case err != nil:
		respond.Error(w, h.log, http.StatusInternalServerError, err)
	default:
		respond.JSON(w, h.log, http.StatusOK, dto.FromCouriers(couriers))
	}
}

func parseFilter(query url.Values) (entities.CourierFilter, error) {
	filter := entities.CourierFilter{Limit: defaultLimit}

	if raw := query.Get("status"); raw != "" {
		status := entities.CourierStatusType(raw)
		filter.Status = &status
	}
	if raw := query.Get("transport_type"); raw != "" {
		transport := entities.CourierTransportType(raw)
		filter.TransportType = &transport
	}
	if raw := query.Get("located"); raw != "" {
		located, err := strconv.ParseBool(raw)
		if err != nil {
			return filter, ErrInvalidQuery
		}
		filter.HasLocation = &located
	}

	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || limit == 0 {
			return filter, ErrInvalidQuery
		}
		filter.Limit = min(limit, maxLimit)
	}
	if raw := query.Get("offset"); raw != "" {
		offset, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return filter, ErrInvalidQuery
		}
		filter.Offset = offset
	}

	return filter, nil
}
