package courier

import (
	"strings"

	"lastmile/internal/entities"
	"lastmile/pkg/geo"
)

const maxPhoneLen = 16

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

// E.164: плюс и до 15 цифр
func isValidPhone(phone string) bool {
	phone = strings.TrimSpace(phone)
	if !strings.HasPrefix(phone, "+") || len(phone) < 2 || len(phone) > maxPhoneLen {
		return false
	}

	for _, char := range phone[1:] {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}

func isValidStatus(status entities.CourierStatusType) bool {
	switch status {
	case entities.CourierAvailable, entities.CourierBusy, entities.CourierPaused:
		return true
	default:
		return false
	}
}

func isValidTransport(transport entities.CourierTransportType) bool {
	switch transport {
	case entities.OnFoot, entities.Bicycle, entities.Scooter, entities.Car, entities.Truck:
		return true
	default:
		return false
	}
}

func isValidLocation(p *entities.Point) bool {
	return p == nil || geo.ValidCoordinate(p.Lat, p.Lng)
}
