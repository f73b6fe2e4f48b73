package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Domenick1991/tripplanner/internal/domain"
)

var ErrNoInput = errors.New("no trip entered")

// ReadTrip collects stops interactively. The first city and date are
// required. After that an empty city ends input, and a city entered with
// an empty date is kept as the final stop.
func ReadTrip(r io.Reader, w io.Writer) (domain.TripRequest, error) {
	scanner := bufio.NewScanner(r)
	ask := func(question string) (string, bool) {
		fmt.Fprint(w, question)
		if !scanner.Scan() {
			return "", false
		}
		return strings.TrimSpace(scanner.Text()), true
	}

	var req domain.TripRequest
	for {
		question := "Enter the next stop or an empty line to finish: "
		if len(req.Stops) == 0 {
			question = "Enter the departure city: "
		}
		city, ok := ask(question)
		if !ok || (city == "" && len(req.Stops) > 0) {
			break
		}
		if city == "" {
			continue
		}

		date, ok := ask("Enter the departure date (YYYY-MM-DD): ")
		req.Stops = append(req.Stops, domain.Stop{City: city, Date: date})
		if !ok || (date == "" && len(req.Stops) > 1) {
			break
		}
	}

	if err := scanner.Err(); err != nil {
		return domain.TripRequest{}, fmt.Errorf("read trip: %w", err)
	}
	if len(req.Stops) == 0 {
		return domain.TripRequest{}, ErrNoInput
	}
	return req, nil
}
