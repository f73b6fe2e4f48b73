package domain

import "time"

// Leg is one directly bookable segment between two named points.
type Leg struct {
	Start     string
	Finish    string
	StartAt   time.Time
	FinishAt  time.Time
	Transfers []string
}

func NewLeg(start, finish string, startAt, finishAt time.Time, transfers []string) Leg {
	ts := make([]string, len(transfers))
	copy(ts, transfers)
	return Leg{
		Start:     start,
		Finish:    finish,
		StartAt:   startAt,
		FinishAt:  finishAt,
		Transfers: ts,
	}
}

func (l Leg) Duration() time.Duration {
	return l.FinishAt.Sub(l.StartAt)
}

// LegGroup holds the alternatives for a single hop, in provider order.
type LegGroup []Leg
