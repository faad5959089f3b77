package entities

// UnknownDistance marks a candidate that is available but has no location fix.
const UnknownDistance float64 = -1

type Candidate struct {
	CourierID     int64
	Name          string
	TransportType CourierTransportType
	Location      *Point
	DistanceKm    float64
	Rating        float64
	CompletedJobs int64
}

func (c Candidate) HasDistance() bool {
	return c.DistanceKm >= 0
}

type CandidateQuery struct {
	Origin   Point
	RadiusKm float64
	Limit    uint64
}
