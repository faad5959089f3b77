package entities

type Point struct {
	Lat float64
	Lng float64
}
