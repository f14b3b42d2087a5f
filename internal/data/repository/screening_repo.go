package repository

import (
	"context"
	"errors"
	"fmt"

	"cinemania/internal/data/entity"
	"cinemania/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ScreeningRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Screening, error)
	FindByCinemaName(ctx context.Context, cinemaName string) ([]*entity.ScreeningListing, error)
}

type screeningRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewScreeningRepository(db database.PgxIface, log *zap.Logger) ScreeningRepository {
	return &screeningRepository{
		db:  db,
		log: log.With(zap.String("repository", "screening")),
	}
}

// FindByID returns nil, nil when the screening does not exist.
func (r *screeningRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Screening, error) {
	query := `
		SELECT id, show_time, cinema_id, movie_id
		FROM screenings
		WHERE id = $1
	`

	var screening entity.Screening
	err := r.db.QueryRow(ctx, query, id).Scan(
		&screening.ID,
		&screening.ShowTime,
		&screening.CinemaID,
		&screening.MovieID,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find screening by ID",
			zap.Error(err),
			zap.String("screening_id", id.String()),
		)
		return nil, fmt.Errorf("find screening by ID %s: %w", id.String(), err)
	}

	return &screening, nil
}

func (r *screeningRepository) FindByCinemaName(ctx context.Context, cinemaName string) ([]*entity.ScreeningListing, error) {
	query := `
		SELECT s.id, s.show_time, s.cinema_id, s.movie_id,
		       m.id, m.title, m.runtime, m.release_date, m.poster_path
		FROM screenings s
		JOIN cinemas c ON c.id = s.cinema_id
		JOIN movies m ON m.id = s.movie_id
		WHERE c.name = $1
		ORDER BY s.show_time, m.title
	`

	rows, err := r.db.Query(ctx, query, cinemaName)
	if err != nil {
		r.log.Error("Failed to find screenings by cinema",
			zap.Error(err),
			zap.String("cinema_name", cinemaName),
		)
		return nil, fmt.Errorf("find screenings by cinema %s: %w", cinemaName, err)
	}
	defer rows.Close()

	listings := []*entity.ScreeningListing{}
	for rows.Next() {
		var l entity.ScreeningListing
		err := rows.Scan(
			&l.ID,
			&l.ShowTime,
			&l.CinemaID,
			&l.MovieID,
			&l.Movie.ID,
			&l.Movie.Title,
			&l.Movie.Runtime,
			&l.Movie.ReleaseDate,
			&l.Movie.PosterPath,
		)
		if err != nil {
			r.log.Error("Failed to scan screening row", zap.Error(err))
			return nil, fmt.Errorf("scan screening row: %w", err)
		}
		listings = append(listings, &l)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate screening rows: %w", err)
	}

	r.log.Debug("Screenings found",
		zap.String("cinema_name", cinemaName),
		zap.Int("count", len(listings)),
	)

	return listings, nil
}
