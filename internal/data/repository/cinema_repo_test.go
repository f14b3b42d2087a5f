package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCinemaRepository_FindCities(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT DISTINCT city FROM cinemas ORDER BY city")).
		WillReturnRows(pgxmock.NewRows([]string{"city"}).
			AddRow("Bay City").
			AddRow("Springfield"))

	cities, err := repo.Cinema.FindCities(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Bay City", "Springfield"}, cities)
}

func TestCinemaRepository_FindCities_Empty(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT DISTINCT city FROM cinemas")).
		WillReturnRows(pgxmock.NewRows([]string{"city"}))

	cities, err := repo.Cinema.FindCities(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, cities)
	assert.Empty(t, cities)
}

func TestCinemaRepository_FindCities_QueryError(t *testing.T) {
	repo, mock := newMockRepository(t)
	boom := errors.New("connection refused")

	mock.ExpectQuery(regexp.QuoteMeta("SELECT DISTINCT city FROM cinemas")).
		WillReturnError(boom)

	_, err := repo.Cinema.FindCities(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestCinemaRepository_FindByCity(t *testing.T) {
	repo, mock := newMockRepository(t)
	grand, plaza := uuid.New(), uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE city = $1")).
		WithArgs("Springfield").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "city"}).
			AddRow(grand, "Grand", "Springfield").
			AddRow(plaza, "Plaza", "Springfield"))

	cinemas, err := repo.Cinema.FindByCity(context.Background(), "Springfield")
	require.NoError(t, err)
	require.Len(t, cinemas, 2)
	assert.Equal(t, grand, cinemas[0].ID)
	assert.Equal(t, "Grand", cinemas[0].Name)
	assert.Equal(t, "Plaza", cinemas[1].Name)
	assert.Equal(t, "Springfield", cinemas[1].City)
}

func TestCinemaRepository_FindByCity_Unknown(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE city = $1")).
		WithArgs("Atlantis").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "city"}))

	cinemas, err := repo.Cinema.FindByCity(context.Background(), "Atlantis")
	require.NoError(t, err)
	assert.Empty(t, cinemas)
}
