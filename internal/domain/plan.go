package domain

import "time"

type Plan struct {
	ID          string
	Request     TripRequest
	Itineraries []Itinerary
	CreatedAt   time.Time
}
