package deliveries_get

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"lastmile/internal/entities"
	"lastmile/internal/handlers/rest/dto"
	"lastmile/internal/handlers/rest/respond"
)

const (
	defaultLimit uint64 = 50
	maxLimit     uint64 = 500
)

var (
	ErrInvalidStatus = errors.New("invalid status filter")
	ErrInvalidNumber = errors.New("invalid numeric filter")
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
	filter, err := parseFilter(r.URL.Query())
	if err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, err)
		return
	}

	deliveries, err := h.service.ListDeliveries(r.Context(), filter)
	if err != nil {
		respond.Error(w, h.log, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.FromDeliveries(deliveries))
}

func parseFilter(query url.Values) (entities.DeliveryFilter, error) {
	filter := entities.DeliveryFilter{Limit: defaultLimit}

	if raw := query.Get("status"); raw != "" {
		status := entities.DeliveryStatus(raw)
		if !isKnownStatus(status) {
			return filter, ErrInvalidStatus
		}
		filter.Status = &status
	}

	var err error
	if filter.CustomerID, err = optionalID(query.Get("customer_id")); err != nil {
		return filter, err
	}
	if filter.CourierID, err = optionalID(query.Get("courier_id")); err != nil {
		return filter, err
	}

	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || limit == 0 {
			return filter, ErrInvalidNumber
		}
		filter.Limit = min(limit, maxLimit)
	}
	if raw := query.Get("offset"); raw != "" {
		offset, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return filter, ErrInvalidNumber
		}
		filter.Offset = offset
	}

	return filter, nil
}

func optionalID(raw string) (*int64, error) {
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil, ErrInvalidNumber
	}
	return &id, nil
}

func isKnownStatus(status entities.DeliveryStatus) bool {
	switch status {
	case entities.DeliveryPending,
		entities.DeliveryAccepted,
		entities.DeliveryPickedUp,
		entities.DeliveryInTransit,
		entities.DeliveryDelivered,
		entities.DeliveryCancelled:
		return true
	default:
		return false
	}
}
