package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Domenick1991/tripplanner/internal/domain"
)

const instantLayout = "2006-01-02 15:04:05"

// Render writes ranked itineraries numbered from 1, each leg on its own
// line followed by the total duration.
func Render(w io.Writer, its []domain.Itinerary) error {
	if len(its) == 0 {
		_, err := fmt.Fprintln(w, "No routes found.")
		return err
	}
	for i, it := range its {
		if _, err := fmt.Fprintf(w, "Route %d:\n", i+1); err != nil {
			return err
		}
		for _, leg := range it.Legs {
			if _, err := fmt.Fprintln(w, FormatLeg(leg)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "Total duration: %s\n", FormatDuration(it.TotalDuration())); err != nil {
			return err
		}
	}
	return nil
}

func FormatLeg(leg domain.Leg) string {
	return fmt.Sprintf("From: %s, To: %s, Departure: %s, Arrival: %s, Transfers: [%s], Duration: %s",
		leg.Start,
		leg.Finish,
		leg.StartAt.Format(instantLayout),
		leg.FinishAt.Format(instantLayout),
		strings.Join(leg.Transfers, ", "),
		FormatDuration(leg.Duration()),
	)
}

// FormatDuration renders whole minutes as "2h05m".
func FormatDuration(d time.Duration) string {
	sign := ""
	if d < 0 {
		sign = "-"
		d = -d
	}
	d = d.Truncate(time.Minute)
	return fmt.Sprintf("%s%dh%02dm", sign, int(d.Hours()), int(d.Minutes())%60)
}
