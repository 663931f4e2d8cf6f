package projects

import (
	"context"
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(f float64) *float64 { return &f }

var projectColumns = []string{"id", "title", "description", "difficulty", "cost"}

func setupPostgres(t *testing.T) (*Postgres, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewPostgres(mock, 10), mock
}

func TestPostgres_GetPublishedProjects(t *testing.T) {
	src, mock := setupPostgres(t)

	mock.ExpectQuery(`WHERE is_published = true`).
		WithArgs(10).
		WillReturnRows(pgxmock.NewRows(projectColumns).
			AddRow("1", "Line Follower", "Follows a black line", "easy", ptr(40)).
			AddRow("2", "Robot Arm", "", "hard", nil))

	list, err := src.GetPublishedProjects(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, "1", list[0].ID)
	assert.Equal(t, "Line Follower", list[0].Title)
	assert.Equal(t, "easy", list[0].Difficulty)
	require.NotNil(t, list[0].Cost)
	assert.Equal(t, 40.0, *list[0].Cost)

	assert.Equal(t, "Robot Arm", list[1].Title)
	assert.Nil(t, list[1].Cost)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_Empty(t *testing.T) {
	src, mock := setupPostgres(t)

	mock.ExpectQuery(`FROM projects`).
		WithArgs(10).
		WillReturnRows(pgxmock.NewRows(projectColumns))

	list, err := src.GetPublishedProjects(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestPostgres_QueryError(t *testing.T) {
	src, mock := setupPostgres(t)
	cause := errors.New("connection refused")

	mock.ExpectQuery(`FROM projects`).
		WithArgs(10).
		WillReturnError(cause)

	list, err := src.GetPublishedProjects(context.Background())
	assert.Nil(t, list)
	assert.ErrorIs(t, err, ErrLoadFailed)
	assert.ErrorIs(t, err, cause)
}

func TestPostgres_RowError(t *testing.T) {
	src, mock := setupPostgres(t)

	mock.ExpectQuery(`FROM projects`).
		WithArgs(10).
		WillReturnRows(pgxmock.NewRows(projectColumns).
			AddRow("1", "Line Follower", "", "easy", nil).
			RowError(0, errors.New("conn closed")))

	_, err := src.GetPublishedProjects(context.Background())
	assert.ErrorIs(t, err, ErrLoadFailed)
}

type pingOnly struct {
	Querier
	err error
}

func (p pingOnly) Ping(context.Context) error { return p.err }

func TestPostgres_Ping(t *testing.T) {
	assert.NoError(t, NewPostgres(pingOnly{}, 10).Ping(context.Background()))

	err := NewPostgres(pingOnly{err: errors.New("timeout")}, 10).Ping(context.Background())
	assert.ErrorIs(t, err, ErrLoadFailed)
	assert.ErrorContains(t, err, "timeout")
}

func TestPostgres_Sample(t *testing.T) {
	src, mock := setupPostgres(t)

	mock.ExpectQuery(`FROM projects`).
		WithArgs(1).
		WillReturnRows(pgxmock.NewRows(projectColumns).
			AddRow("3", "Rover", "", "medium", nil))
	mock.ExpectQuery(`FROM projects`).
		WithArgs(1).
		WillReturnRows(pgxmock.NewRows(projectColumns))

	p, err := src.Sample(context.Background())
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Rover", p.Title)

	p, err = src.Sample(context.Background())
	require.NoError(t, err)
	assert.Nil(t, p)

	require.NoError(t, mock.ExpectationsWereMet())
}
