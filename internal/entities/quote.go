package entities

import "time"

type QuoteRequest struct {
	Pickup    Point
	Drop      Point
	ItemClass ItemClass
	Vehicle   CourierTransportType
}

type Quote struct {
	DistanceKm        float64
	ItemClass         ItemClass
	QuotedFee         int64
	CourierFee        int64
	PlatformFee       int64
	EstimatedDuration time.Duration
}
