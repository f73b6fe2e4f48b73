package notify

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Domenick1991/tripplanner/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSender_Send(t *testing.T) {
	var buf bytes.Buffer
	sender := NewWriterSender(&buf)

	start := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	plan := &domain.Plan{
		ID: "p1",
		Itineraries: []domain.Itinerary{
			domain.NewItinerary(domain.NewLeg("Москва", "Тверь", start, start.Add(90*time.Minute), nil)),
		},
	}

	require.NoError(t, sender.Send(context.Background(), plan))
	assert.Contains(t, buf.String(), "Plan p1: 1 route(s)\n")
	assert.Contains(t, buf.String(), "Route 1:")
	assert.Contains(t, buf.String(), "Total duration: 1h30m")
}

func TestSender_SendEmptyPlan(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriterSender(&buf).Send(context.Background(), &domain.Plan{ID: "p2"}))
	assert.Equal(t, "Plan p2: 0 route(s)\nNo routes found.\n", buf.String())
}

func TestSender_SendFailure(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriterSender(&buf).SendFailure(context.Background(), "p3", errors.New("provider down")))
	assert.Equal(t, "Plan p3 failed: provider down\n", buf.String())
}
