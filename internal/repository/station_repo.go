package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Domenick1991/tripplanner/internal/domain"
)

type StationRepository interface {
	Load(ctx context.Context) (*domain.StationCodes, error)
	Save(ctx context.Context, codes *domain.StationCodes) error
}

// FileStationRepository keeps station codes as a formatted JSON object.
type FileStationRepository struct {
	path string
}

func NewFileStationRepository(path string) StationRepository {
	return &FileStationRepository{path: path}
}

func (r *FileStationRepository) Load(ctx context.Context) (*domain.StationCodes, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("read station codes %s: %w", r.path, err)
	}

	codes := domain.NewStationCodes()
	if err := json.Unmarshal(data, codes); err != nil {
		return nil, fmt.Errorf("decode station codes %s: %w", r.path, err)
	}
	return codes, nil
}

func (r *FileStationRepository) Save(ctx context.Context, codes *domain.StationCodes) error {
	if codes == nil {
		return errors.New("station codes are nil")
	}
	data, err := json.MarshalIndent(codes, "", "    ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(r.path, append(data, '\n'), 0o644)
}

var _ StationRepository = (*FileStationRepository)(nil)
