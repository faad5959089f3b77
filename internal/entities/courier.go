package entities

import (
	"time"
)

type Courier struct {
	ID            int64
	Name          string
	Phone         string
	Status        CourierStatusType
	TransportType CourierTransportType
	// Location is nil while the courier has no location fix.
	Location          *Point
	LocationUpdatedAt *time.Time
	Rating            float64
	CompletedJobs     int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type CourierTransportType string

const (
	OnFoot  CourierTransportType = "on_foot"
	Bicycle CourierTransportType = "bicycle"
	Scooter CourierTransportType = "scooter"
	Car     CourierTransportType = "car"
	Truck   CourierTransportType = "truck"
)

const DefaultTransportType = OnFoot

func (t CourierTransportType) String() string {
	return string(t)
}

type CourierStatusType string

const (
	CourierAvailable CourierStatusType = "available"
	CourierBusy      CourierStatusType = "busy"
	CourierPaused    CourierStatusType = "paused"
)

const DefaultStatusType = CourierAvailable

func (t CourierStatusType) String() string {
	return string(t)
}

type CourierModify struct {
	ID            *int64
	Name          *string
	Phone         *string
	Status        *CourierStatusType
	TransportType *CourierTransportType
	Location      *Point
}

// CourierFilter - выборка для диспетчерского списка, nil поля не фильтруют.
type CourierFilter struct {
	Status        *CourierStatusType
	TransportType *CourierTransportType
	// HasLocation отделяет курьеров, которых видит подбор кандидатов.
	HasLocation *bool
	Limit       uint64
	Offset      uint64
}
