package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Domenick1991/tripplanner/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const stationCodesSchema = `CREATE TABLE IF NOT EXISTS station_codes (
	position BIGINT PRIMARY KEY,
	title    TEXT NOT NULL,
	code     TEXT NOT NULL
)`

// PGStationRepository stores one row per (title, code) pair. position is
// the pair's index in flattening order, which is enough to rebuild the
// title order on load.
type PGStationRepository struct {
	db *pgxpool.Pool
}

func NewStationRepository(db *pgxpool.Pool) *PGStationRepository {
	return &PGStationRepository{db: db}
}

func (r *PGStationRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.Exec(ctx, stationCodesSchema)
	return err
}

func (r *PGStationRepository) Load(ctx context.Context) (*domain.StationCodes, error) {
	rows, err := r.db.Query(ctx, `SELECT title, code FROM station_codes ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	codes := domain.NewStationCodes()
	for rows.Next() {
		var title, code string
		if err := rows.Scan(&title, &code); err != nil {
			return nil, err
		}
		codes.Add(title, code)
	}
	return codes, rows.Err()
}

func (r *PGStationRepository) Save(ctx context.Context, codes *domain.StationCodes) error {
	if codes == nil {
		return errors.New("station codes are nil")
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM station_codes`); err != nil {
		return err
	}

	rows := stationRows(codes)
	n, err := tx.CopyFrom(ctx, pgx.Identifier{"station_codes"}, []string{"position", "title", "code"}, pgx.CopyFromRows(rows))
	if err != nil {
		return fmt.Errorf("copy station codes: %w", err)
	}
	if n != int64(len(rows)) {
		return fmt.Errorf("copied %d station codes, expected %d", n, len(rows))
	}

	return tx.Commit(ctx)
}

func stationRows(codes *domain.StationCodes) [][]any {
	rows := make([][]any, 0, codes.Len())
	var position int64
	for _, title := range codes.Titles() {
		list, _ := codes.Codes(title)
		for _, code := range list {
			rows = append(rows, []any{position, title, code})
			position++
		}
	}
	return rows
}

var _ StationRepository = (*PGStationRepository)(nil)
