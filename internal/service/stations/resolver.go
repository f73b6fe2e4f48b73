package stations

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Domenick1991/tripplanner/internal/domain"
)

var ErrStationNotFound = errors.New("station code not found")

type StationResolver interface {
	Resolve(name string) (string, error)
}

type Resolver struct {
	codes *domain.StationCodes
}

func NewResolver(codes *domain.StationCodes) *Resolver {
	if codes == nil {
		codes = domain.NewStationCodes()
	}
	return &Resolver{codes: codes}
}

// Resolve maps a station name to a provider code. Values that already look
// like codes pass through. An exact title wins; otherwise the first title
// containing the name, case-insensitively, in reference order.
func (r *Resolver) Resolve(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: empty name", ErrStationNotFound)
	}
	if strings.HasPrefix(name, "s") {
		return name, nil
	}

	if codes, ok := r.codes.Codes(name); ok && len(codes) > 0 {
		return codes[0], nil
	}

	lower := strings.ToLower(name)
	for _, title := range r.codes.Titles() {
		if !strings.Contains(strings.ToLower(title), lower) {
			continue
		}
		if codes, _ := r.codes.Codes(title); len(codes) > 0 {
			return codes[0], nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrStationNotFound, name)
}

var _ StationResolver = (*Resolver)(nil)
