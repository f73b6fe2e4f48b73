package planner

import (
	"testing"

	"github.com/Domenick1991/tripplanner/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestRank_StableAscending(t *testing.T) {
	long := domain.NewItinerary(leg("long", "08:00", "12:00"))
	tieFirst := domain.NewItinerary(leg("tie1", "09:00", "10:00"))
	short := domain.NewItinerary(leg("short", "09:00", "09:30"))
	tieSecond := domain.NewItinerary(leg("tie2", "13:00", "14:00"))

	input := []domain.Itinerary{long, tieFirst, short, tieSecond}
	ranked := Rank(input)

	got := make([]string, 0, len(ranked))
	for _, it := range ranked {
		got = append(got, it.Legs[0].Start)
	}
	assert.Equal(t, []string{"short", "tie1", "tie2", "long"}, got)
	assert.Equal(t, "long", input[0].Legs[0].Start)

	for i := 1; i < len(ranked); i++ {
		assert.LessOrEqual(t, ranked[i-1].TotalDuration(), ranked[i].TotalDuration())
	}
}

func TestRank_Empty(t *testing.T) {
	assert.Empty(t, Rank(nil))
}
