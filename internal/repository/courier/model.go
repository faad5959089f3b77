package courier

import "time"

type CourierDB struct {
	ID                int64
	Name              string
	Phone             string
	Status            string
	TransportType     string
	Lat               *float64
	Lng               *float64
	LocationUpdatedAt *time.Time
	Rating            float64
	CompletedJobs     int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type CourierModifyDB struct {
	ID            *int64
	Name          *string
	Phone         *string
	Status        *string
	TransportType *string
	Lat           *float64
	Lng           *float64
}

type CandidateDB struct {
	ID            int64
	Name          string
	TransportType string
	Lat           *float64
	Lng           *float64
	Rating        float64
	CompletedJobs int64
	DistanceKm    *float64
}
