package kafka

import (
	"time"

	"github.com/Domenick1991/tripplanner/internal/domain"
	"github.com/Domenick1991/tripplanner/internal/report"
)

const (
	PlanCompleted = "plan_completed"
	PlanFailed    = "plan_failed"

	instantLayout = "2006-01-02T15:04:05"
)

type PlanRequestMessage struct {
	ID    string        `json:"id"`
	Stops []domain.Stop `json:"stops"`
}

func (m PlanRequestMessage) TripRequest() domain.TripRequest {
	return domain.TripRequest{ID: m.ID, Stops: m.Stops}
}

type LegPayload struct {
	Start         string   `json:"start"`
	Finish        string   `json:"finish"`
	StartInstant  string   `json:"start_instant"`
	FinishInstant string   `json:"finish_instant"`
	Transfers     []string `json:"transfers"`
}

type ItineraryPayload struct {
	Legs                 []LegPayload `json:"legs"`
	TotalDurationSeconds int64        `json:"total_duration_seconds"`
	TotalDuration        string       `json:"total_duration"`
}

type PlanEvent struct {
	Type        string             `json:"type"`
	ID          string             `json:"id"`
	Itineraries []ItineraryPayload `json:"itineraries,omitempty"`
	Error       string             `json:"error,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
}

func NewPlanEvent(plan *domain.Plan) PlanEvent {
	return PlanEvent{
		Type:        PlanCompleted,
		ID:          plan.ID,
		Itineraries: ItineraryPayloads(plan.Itineraries),
		CreatedAt:   plan.CreatedAt,
	}
}

func NewFailedPlanEvent(id string, err error, at time.Time) PlanEvent {
	return PlanEvent{
		Type:      PlanFailed,
		ID:        id,
		Error:     err.Error(),
		CreatedAt: at,
	}
}

func ItineraryPayloads(its []domain.Itinerary) []ItineraryPayload {
	out := make([]ItineraryPayload, 0, len(its))
	for _, it := range its {
		legs := make([]LegPayload, 0, len(it.Legs))
		for _, leg := range it.Legs {
			transfers := leg.Transfers
			if transfers == nil {
				transfers = []string{}
			}
			legs = append(legs, LegPayload{
				Start:         leg.Start,
				Finish:        leg.Finish,
				StartInstant:  leg.StartAt.Format(instantLayout),
				FinishInstant: leg.FinishAt.Format(instantLayout),
				Transfers:     transfers,
			})
		}
		total := it.TotalDuration()
		out = append(out, ItineraryPayload{
			Legs:                 legs,
			TotalDurationSeconds: int64(total / time.Second),
			TotalDuration:        report.FormatDuration(total),
		})
	}
	return out
}
