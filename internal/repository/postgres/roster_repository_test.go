package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bagdasarian/church-roster/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rosterColumns = []string{"id", "ministry_id", "date", "created_at", "member_id", "name", "role"}

func sunday(day int) time.Time {
	return time.Date(2025, time.January, day, 0, 0, 0, 0, time.UTC)
}

func TestRosterRepository_Create(t *testing.T) {
	t.Run("ростер создан", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewRosterRepository(db)
		now := time.Now()

		mock.ExpectQuery("INSERT INTO rosters").
			WithArgs(int64(1), sunday(5), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(10, now))

		roster, created, err := repo.Create(context.Background(), 1, sunday(5))

		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, int64(10), roster.ID)
		assert.Equal(t, int64(1), roster.MinistryID)
		assert.Equal(t, sunday(5), roster.Date)
		assert.NotNil(t, roster.Assignments)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("на эту дату ростер уже есть", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewRosterRepository(db)

		mock.ExpectQuery("ON CONFLICT \\(ministry_id, date\\) DO NOTHING").
			WithArgs(int64(1), sunday(12), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}))

		roster, created, err := repo.Create(context.Background(), 1, sunday(12))

		require.NoError(t, err)
		assert.False(t, created)
		assert.Nil(t, roster)
	})

	t.Run("ошибка БД", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewRosterRepository(db)
		dbErr := errors.New("disk full")

		mock.ExpectQuery("INSERT INTO rosters").WillReturnError(dbErr)

		_, created, err := repo.Create(context.Background(), 1, sunday(5))

		assert.ErrorIs(t, err, dbErr)
		assert.False(t, created)
	})
}

func TestRosterRepository_AttachAssignment(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRosterRepository(db)

	mock.ExpectExec("INSERT INTO roster_assignments").
		WithArgs(int64(10), int64(3), "Vocal", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.AttachAssignment(context.Background(), 10, 3, "Vocal")

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRosterRepository_GetByID(t *testing.T) {
	t.Run("ростер с назначениями", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewRosterRepository(db)
		now := time.Now()

		mock.ExpectQuery("WHERE r.id = \\$1").
			WithArgs(int64(10)).
			WillReturnRows(sqlmock.NewRows(rosterColumns).
				AddRow(10, 1, sunday(5), now, 3, "Ana", "Vocal").
				AddRow(10, 1, sunday(5), now, 4, "Bruno", "Drums"))

		roster, err := repo.GetByID(context.Background(), 10)

		require.NoError(t, err)
		require.Len(t, roster.Assignments, 2)
		assert.Equal(t, "Ana", roster.Assignments[0].MemberName)
		assert.Equal(t, "Drums", roster.Assignments[1].Role)
		assert.Equal(t, int64(10), roster.Assignments[1].RosterID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ростер без назначений", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewRosterRepository(db)

		mock.ExpectQuery("WHERE r.id = \\$1").
			WithArgs(int64(11)).
			WillReturnRows(sqlmock.NewRows(rosterColumns).AddRow(11, 1, sunday(12), time.Now(), nil, nil, nil))

		roster, err := repo.GetByID(context.Background(), 11)

		require.NoError(t, err)
		assert.Empty(t, roster.Assignments)
	})

	t.Run("не найден", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewRosterRepository(db)

		mock.ExpectQuery("WHERE r.id = \\$1").
			WithArgs(int64(99)).
			WillReturnRows(sqlmock.NewRows(rosterColumns))

		_, err := repo.GetByID(context.Background(), 99)

		assert.ErrorIs(t, err, repository.ErrRosterNotFound)
	})
}

func TestRosterRepository_ListByMinistry(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRosterRepository(db)
	now := time.Now()

	mock.ExpectQuery("WHERE r.ministry_id = \\$1").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(rosterColumns).
			AddRow(10, 1, sunday(5), now, 3, "Ana", "Vocal").
			AddRow(10, 1, sunday(5), now, 4, "Bruno", "Bass").
			AddRow(11, 1, sunday(12), now, 3, "Ana", "Guitar"))

	rosters, err := repo.ListByMinistry(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, rosters, 2)
	assert.Len(t, rosters[0].Assignments, 2)
	assert.Len(t, rosters[1].Assignments, 1)
	assert.Equal(t, sunday(12), rosters[1].Date)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRosterRepository_Delete(t *testing.T) {
	t.Run("удален", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewRosterRepository(db)

		mock.ExpectExec("DELETE FROM rosters").
			WithArgs(int64(10)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Delete(context.Background(), 10))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("не найден", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewRosterRepository(db)

		mock.ExpectExec("DELETE FROM rosters").
			WithArgs(int64(10)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(context.Background(), 10), repository.ErrRosterNotFound)
	})
}
