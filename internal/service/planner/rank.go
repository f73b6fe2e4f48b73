package planner

import (
	"sort"

	"github.com/Domenick1991/tripplanner/internal/domain"
)

// Rank orders itineraries by total duration, shortest first. Equal
// durations keep their enumeration order. The input slice is untouched.
func Rank(its []domain.Itinerary) []domain.Itinerary {
	ranked := make([]domain.Itinerary, len(its))
	copy(ranked, its)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalDuration() < ranked[j].TotalDuration()
	})
	return ranked
}
