package stations

import (
	"context"
	"fmt"
	"io"

	"github.com/Domenick1991/tripplanner/internal/domain"
	"github.com/Domenick1991/tripplanner/internal/repository"
	"github.com/rs/zerolog/log"
)

// Convert flattens a stations document and saves the result to every
// repository in order. The first failing save aborts the rest.
func Convert(ctx context.Context, r io.Reader, repos ...repository.StationRepository) (*domain.StationCodes, error) {
	doc, err := DecodeDocument(r)
	if err != nil {
		return nil, err
	}

	codes := Flatten(doc)
	log.Info().Int("titles", codes.Len()).Msg("Flattened stations reference")

	for _, repo := range repos {
		if err := repo.Save(ctx, codes); err != nil {
			return nil, fmt.Errorf("save station codes: %w", err)
		}
	}
	return codes, nil
}
