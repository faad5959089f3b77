package quote_get

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"lastmile/internal/entities"
	"lastmile/internal/handlers/rest/dto"
	"lastmile/internal/handlers/rest/respond"
	"lastmile/internal/service/delivery"
	"lastmile/internal/service/fee"
)

var ErrInvalidCoordinate = errors.New("invalid coordinate parameter")

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
	req, err := parseQuote(r.URL.Query())
	if err != nil {
		respond.Error(w, h.log, http.StatusBadRequest, err)
		return
	}

	quote, err := h.service.Quote(req)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrInvalidPoint),
			errors.Is(err, delivery.ErrInvalidItemClass),
			errors.Is(err, delivery.ErrInvalidVehicle),
			errors.Is(err, fee.ErrInvalidDistance),
			errors.Is(err, fee.ErrUnknownItemClass):
			respond.Error(w, h.log, http.StatusBadRequest, err)
		default:
			respond.Error(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.FromQuote(quote))
}

func parseQuote(query url.Values) (entities.QuoteRequest, error) {
	var coords [4]float64
	for i, key := range []string{"from_lat", "from_lng", "to_lat", "to_lng"} {
		value, err := strconv.ParseFloat(query.Get(key), 64)
		if err != nil {
			return entities.QuoteRequest{}, ErrInvalidCoordinate
		}
		coords[i] = value
	}

	return entities.QuoteRequest{
		Pickup:    entities.Point{Lat: coords[0], Lng: coords[1]},
		Drop:      entities.Point{Lat: coords[2], Lng: coords[3]},
		ItemClass: entities.ItemClass(query.Get("item_class")),
		Vehicle:   entities.CourierTransportType(query.Get("vehicle")),
	}, nil
}
