package courier

import (
	"lastmile/internal/entities"
)

func toPoint(lat, lng *float64) *entities.Point {
	if lat == nil || lng == nil {
		return nil
	}
	return &entities.Point{Lat: *lat, Lng: *lng}
}

func ToDomain(c *CourierDB) *entities.Courier {
	if c == nil {
		return nil
	}

	return &entities.Courier{
		ID:                c.ID,
		Name:              c.Name,
		Phone:             c.Phone,
		Status:            entities.CourierStatusType(c.Status),
		TransportType:     entities.CourierTransportType(c.TransportType),
		Location:          toPoint(c.Lat, c.Lng),
		LocationUpdatedAt: c.LocationUpdatedAt,
		Rating:            c.Rating,
		CompletedJobs:     c.CompletedJobs,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
}

func FromDomainModify(courierModify *entities.CourierModify) *CourierModifyDB {
	if courierModify == nil {
		return nil
	}
	courierDB := &CourierModifyDB{
		ID:    courierModify.ID,
		Name:  courierModify.Name,
		Phone: courierModify.Phone,
	}

	if courierModify.Status != nil {
		statusType := courierModify.Status.String()
		courierDB.Status = &statusType
	}
	if courierModify.TransportType != nil {
		transportType := courierModify.TransportType.String()
		courierDB.TransportType = &transportType
	}
	if courierModify.Location != nil {
		lat, lng := courierModify.Location.Lat, courierModify.Location.Lng
		courierDB.Lat = &lat
		courierDB.Lng = &lng
	}

	return courierDB
}

func ToDomainList(couriersDB []CourierDB) []entities.Courier {
	if len(couriersDB) == 0 {
		return []entities.Courier{}
	}

	result := make([]entities.Courier, len(couriersDB))
	for i, courierDB := range couriersDB {
		result[i] = *ToDomain(&courierDB)
	}
	return result
}

// ToCandidate: без дистанции из БД кандидат получает метку неизвестной дистанции.
func ToCandidate(c *CandidateDB) entities.Candidate {
	distance := entities.UnknownDistance
	if c.DistanceKm != nil {
		distance = *c.DistanceKm
	}

	return entities.Candidate{
		CourierID:     c.ID,
		Name:          c.Name,
		TransportType: entities.CourierTransportType(c.TransportType),
		Location:      toPoint(c.Lat, c.Lng),
		DistanceKm:    distance,
		Rating:        c.Rating,
		CompletedJobs: c.CompletedJobs,
	}
}
