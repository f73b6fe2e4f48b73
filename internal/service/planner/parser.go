package planner

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Domenick1991/tripplanner/internal/domain"
)

const instantLayout = "2006-01-02 15:04:05"

var (
	// ErrNoSegments means the provider document had no "segments" key.
	// The group is empty, but the caller can tell it apart from a hop
	// that simply has no options.
	ErrNoSegments     = errors.New("schedule document has no segments")
	ErrBadInstant     = errors.New("instant is not in YYYY-MM-DDTHH:MM:SS form")
	ErrMissingStation = errors.New("station title is missing")

	ErrMalformedDocument = errors.New("malformed schedule document")
)

type ParseError struct {
	Segment int
	Field   string
	Value   string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("segment %d: %s %q: %v", e.Segment, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

type ScheduleDocument struct {
	Segments *[]Segment `json:"segments"`
}

type Segment struct {
	From          *Point   `json:"from"`
	DepartureFrom *Point   `json:"departure_from"`
	To            *Point   `json:"to"`
	ArrivalTo     *Point   `json:"arrival_to"`
	Departure     string   `json:"departure"`
	Arrival       string   `json:"arrival"`
	Details       []Detail `json:"details"`
}

type Point struct {
	Title string `json:"title"`
}

// Detail is a transfer when it carries an is_transfer key, whatever its value.
type Detail struct {
	IsTransfer    json.RawMessage `json:"is_transfer"`
	TransferPoint *Point          `json:"transfer_point"`
}

// ParseLegs decodes a raw provider document into its leg group.
func ParseLegs(raw []byte) (domain.LegGroup, error) {
	var doc ScheduleDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	return ParseDocument(doc)
}

func ParseDocument(doc ScheduleDocument) (domain.LegGroup, error) {
	if doc.Segments == nil {
		return domain.LegGroup{}, ErrNoSegments
	}

	group := make(domain.LegGroup, 0, len(*doc.Segments))
	for i, seg := range *doc.Segments {
		leg, err := parseSegment(i, seg)
		if err != nil {
			return nil, err
		}
		group = append(group, leg)
	}
	return group, nil
}

func parseSegment(i int, seg Segment) (domain.Leg, error) {
	start, ok := resolveStation(seg.From, seg.DepartureFrom)
	if !ok {
		return domain.Leg{}, &ParseError{Segment: i, Field: "from", Err: ErrMissingStation}
	}
	finish, ok := resolveStation(seg.To, seg.ArrivalTo)
	if !ok {
		return domain.Leg{}, &ParseError{Segment: i, Field: "to", Err: ErrMissingStation}
	}

	startAt, err := parseInstant(seg.Departure)
	if err != nil {
		return domain.Leg{}, &ParseError{Segment: i, Field: "departure", Value: seg.Departure, Err: err}
	}
	finishAt, err := parseInstant(seg.Arrival)
	if err != nil {
		return domain.Leg{}, &ParseError{Segment: i, Field: "arrival", Value: seg.Arrival, Err: err}
	}

	transfers := make([]string, 0, len(seg.Details))
	for _, d := range seg.Details {
		if len(d.IsTransfer) == 0 {
			continue
		}
		if d.TransferPoint == nil {
			return domain.Leg{}, &ParseError{Segment: i, Field: "transfer_point", Err: ErrMissingStation}
		}
		transfers = append(transfers, d.TransferPoint.Title)
	}

	return domain.NewLeg(start, finish, startAt, finishAt, transfers), nil
}

// resolveStation picks the current schema key and falls back to the
// older one.
func resolveStation(current, legacy *Point) (string, bool) {
	if current != nil {
		return current.Title, true
	}
	if legacy != nil {
		return legacy.Title, true
	}
	return "", false
}

// parseInstant reads a naive local instant; no zone conversion is applied.
// The value must round-trip through the layout exactly, so fractional
// seconds and unpadded fields are rejected.
func parseInstant(s string) (time.Time, error) {
	parts := strings.Split(s, "T")
	if len(parts) != 2 {
		return time.Time{}, ErrBadInstant
	}
	value := parts[0] + " " + parts[1]
	t, err := time.Parse(instantLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrBadInstant, err)
	}
	if t.Format(instantLayout) != value {
		return time.Time{}, ErrBadInstant
	}
	return t, nil
}
