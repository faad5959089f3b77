package delivery_eta

import (
	"math"
	"time"

	"lastmile/internal/entities"
)

// Средняя скорость по городу, км/ч.
const (
	onFootSpeed  = 5.0
	bicycleSpeed = 15.0
	scooterSpeed = 20.0
	carSpeed     = 25.0
	truckSpeed   = 20.0
)

// pickupOverhead - время на забор и передачу посылки.
const pickupOverhead = 10 * time.Minute

type DeliveryETAFactory struct{}

func New() *DeliveryETAFactory {
	return &DeliveryETAFactory{}
}

func (d *DeliveryETAFactory) EstimateDuration(transportType entities.CourierTransportType, distanceKm float64) time.Duration {
	var speed float64
	switch transportType {
	case entities.OnFoot:
		speed = onFootSpeed
	case entities.Bicycle:
		speed = bicycleSpeed
	case entities.Scooter:
		speed = scooterSpeed
	case entities.Car:
		speed = carSpeed
	case entities.Truck:
		speed = truckSpeed
	default:
		speed = onFootSpeed
	}

	if distanceKm <= 0 {
		return pickupOverhead
	}

	minutes := math.Ceil(distanceKm * 60 / speed)
	return pickupOverhead + time.Duration(minutes)*time.Minute
}
