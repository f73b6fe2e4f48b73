package domain

import "time"

// Itinerary is one leg per hop, in hop order. Extend never shares the
// backing array with the receiver.
type Itinerary struct {
	Legs []Leg
}

func NewItinerary(first Leg) Itinerary {
	return Itinerary{Legs: []Leg{first}}
}

func (it Itinerary) Extend(next Leg) Itinerary {
	legs := make([]Leg, len(it.Legs), len(it.Legs)+1)
	copy(legs, it.Legs)
	return Itinerary{Legs: append(legs, next)}
}

func (it Itinerary) Len() int {
	return len(it.Legs)
}

func (it Itinerary) Last() Leg {
	return it.Legs[len(it.Legs)-1]
}

// TotalDuration is the wall-clock span from the first departure to the
// last arrival, layovers included.
func (it Itinerary) TotalDuration() time.Duration {
	if len(it.Legs) == 0 {
		return 0
	}
	return it.Last().FinishAt.Sub(it.Legs[0].StartAt)
}
