package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

var (
	ErrInvalidTrip = errors.New("invalid trip request")
)

type Stop struct {
	City string `json:"city"`
	Date string `json:"date"`
}

// TripRequest is the ordered list of stops. Hop i departs Stops[i] on
// Stops[i].Date and arrives at Stops[i+1].
type TripRequest struct {
	ID    string `json:"id,omitempty"`
	Stops []Stop `json:"stops"`
}

type Hop struct {
	Index int
	From  string
	To    string
	Date  string
}

func (r TripRequest) Validate() error {
	if len(r.Stops) < 2 {
		return fmt.Errorf("%w: at least two stops are required", ErrInvalidTrip)
	}
	for i, stop := range r.Stops {
		if strings.TrimSpace(stop.City) == "" {
			return fmt.Errorf("%w: stop %d has no city", ErrInvalidTrip, i+1)
		}
		// the last stop is never departed from, so its date is optional
		if i == len(r.Stops)-1 {
			continue
		}
		if _, err := time.Parse(DateLayout, stop.Date); err != nil {
			return fmt.Errorf("%w: stop %d date %q is not YYYY-MM-DD", ErrInvalidTrip, i+1, stop.Date)
		}
	}
	return nil
}

func (r TripRequest) Hops() []Hop {
	if len(r.Stops) < 2 {
		return nil
	}
	hops := make([]Hop, 0, len(r.Stops)-1)
	for i := 0; i < len(r.Stops)-1; i++ {
		hops = append(hops, Hop{
			Index: i,
			From:  strings.TrimSpace(r.Stops[i].City),
			To:    strings.TrimSpace(r.Stops[i+1].City),
			Date:  r.Stops[i].Date,
		})
	}
	return hops
}
