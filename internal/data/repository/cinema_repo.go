package repository

import (
	"context"
	"fmt"

	"cinemania/internal/data/entity"
	"cinemania/pkg/database"

	"go.uber.org/zap"
)

type CinemaRepository interface {
	FindCities(ctx context.Context) ([]string, error)
	FindByCity(ctx context.Context, city string) ([]*entity.Cinema, error)
}

type cinemaRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCinemaRepository(db database.PgxIface, log *zap.Logger) CinemaRepository {
	return &cinemaRepository{
		db:  db,
		log: log.With(zap.String("repository", "cinema")),
	}
}

func (r *cinemaRepository) FindCities(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT city FROM cinemas ORDER BY city`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find cities", zap.Error(err))
		return nil, fmt.Errorf("find cities: %w", err)
	}
	defer rows.Close()

	cities := []string{}
	for rows.Next() {
		var city string
		if err := rows.Scan(&city); err != nil {
			r.log.Error("Failed to scan city row", zap.Error(err))
			return nil, fmt.Errorf("scan city row: %w", err)
		}
		cities = append(cities, city)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate city rows: %w", err)
	}

	return cities, nil
}

// FindByCity matches the city exactly; case sensitivity follows the column collation.
func (r *cinemaRepository) FindByCity(ctx context.Context, city string) ([]*entity.Cinema, error) {
	query := `
		SELECT id, name, city
		FROM cinemas
		WHERE city = $1
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query, city)
	if err != nil {
		r.log.Error("Failed to find cinemas by city",
			zap.Error(err),
			zap.String("city", city),
		)
		return nil, fmt.Errorf("find cinemas by city %s: %w", city, err)
	}
	defer rows.Close()

	cinemas := []*entity.Cinema{}
	for rows.Next() {
		var cinema entity.Cinema
		err := rows.Scan(
			&cinema.ID,
			&cinema.Name,
			&cinema.City,
		)
		if err != nil {
			r.log.Error("Failed to scan cinema row", zap.Error(err))
			return nil, fmt.Errorf("scan cinema row: %w", err)
		}
		cinemas = append(cinemas, &cinema)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate cinema rows: %w", err)
	}

	return cinemas, nil
}
