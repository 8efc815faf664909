package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Nox1KCL/Movies-WatchList/services/watchlist-service/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

var userColumns = []string{"id", "email", "username", "hashed_password", "created_at", "is_active"}

func TestUserRepositoryGetByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(3, "neo@example.com", "neo", "hash", time.Now(), true))

	user, err := repo.GetByEmail(context.Background(), "neo@example.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, uint(3), user.ID)
	assert.Equal(t, "neo", user.Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryGetByEmailAbsent(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WillReturnRows(sqlmock.NewRows(userColumns))

	user, err := repo.GetByEmail(context.Background(), "ghost@example.com")
	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserRepositoryGetByEmailDatabaseError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "users"`).WillReturnError(errors.New("connection reset"))

	_, err := repo.GetByEmail(context.Background(), "neo@example.com")
	assert.Error(t, err)
}

func TestUserRepositoryGetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE "users"\."id" = \$1`).
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(3, "neo@example.com", "neo", "hash", time.Now(), true))
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE "users"\."id" = \$1`).
		WillReturnRows(sqlmock.NewRows(userColumns))

	user, err := repo.GetByID(context.Background(), 3)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "neo@example.com", user.Email)

	missing, err := repo.GetByID(context.Background(), 4)
	assert.NoError(t, err)
	assert.Nil(t, missing)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryFindByEmailOrUsername(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE \(?email = \$1 OR username = \$2\)?`).
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(1, "a@example.com", "neo", "hash", time.Now(), true))

	user, err := repo.FindByEmailOrUsername(context.Background(), "b@example.com", "neo")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "a@example.com", user.Email)
}

func TestMovieRepositoryListAppliesEveryFilter(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMovieRepository(db)

	genre := "dra%ma"
	year := 2010
	status := domain.StatusWatched
	mock.ExpectQuery(`SELECT \* FROM "movies" WHERE user_id = \$1 AND genre ILIKE \$2 AND year = \$3 AND status = \$4 ORDER BY added_date DESC,\s*id DESC`).
		WithArgs(7, `%dra\%ma%`, 2010, "watched").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "title", "year", "genre", "status"}).
			AddRow(1, 7, "Inception", 2010, "Drama, Sci-Fi", "watched"))

	movies, err := repo.List(context.Background(), 7, domain.MovieFilter{Genre: &genre, Year: &year, Status: &status})
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, "Inception", movies[0].Title)
	assert.Equal(t, domain.StatusWatched, movies[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMovieRepositoryListWithoutFilters(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMovieRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "movies" WHERE user_id = \$1 ORDER BY`).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	movies, err := repo.List(context.Background(), 7, domain.MovieFilter{})
	require.NoError(t, err)
	assert.NotNil(t, movies)
	assert.Empty(t, movies)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMovieRepositoryGetByIDIsScopedToOwner(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMovieRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "movies" WHERE \(?id = \$1 AND user_id = \$2\)?`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	movie, err := repo.GetByID(context.Background(), 2, 5)
	assert.NoError(t, err)
	assert.Nil(t, movie)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMovieRepositoryCreateDuplicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMovieRepository(db)

	mock.ExpectQuery(`INSERT INTO "movies"`).WillReturnError(&pgconn.PgError{Code: "23505"})

	tmdbID := 27205
	err := repo.Create(context.Background(), &domain.Movie{UserID: 1, TMDBID: &tmdbID, Title: "Inception", Year: 2010, Genre: "Drama", Status: domain.StatusWantToWatch})
	assert.ErrorIs(t, err, domain.ErrDuplicateMovie)
}

func TestMovieRepositoryCreate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMovieRepository(db)

	mock.ExpectQuery(`INSERT INTO "movies"`).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))

	movie := &domain.Movie{UserID: 1, Title: "Heat", Year: 1995, Genre: "Crime", Status: domain.StatusWantToWatch}
	require.NoError(t, repo.Create(context.Background(), movie))
	assert.Equal(t, uint(11), movie.ID)
}

func TestMovieRepositoryUpdateNoRowsForOtherUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMovieRepository(db)

	mock.ExpectExec(`UPDATE "movies" SET .* WHERE user_id = \$\d+ AND "movies"\."id" = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := repo.Update(context.Background(), &domain.Movie{ID: 4, UserID: 9, Title: "Heat", Status: domain.StatusWatching, UpdatedDate: time.Now()})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMovieRepositoryDelete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMovieRepository(db)

	mock.ExpectExec(`DELETE FROM "movies" WHERE \(?id = \$1 AND user_id = \$2\)?`).
		WithArgs(4, 9).
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := repo.Delete(context.Background(), 9, 4)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactorRollsBackOnError(t *testing.T) {
	db, mock := newMockDB(t)
	tx := NewTransactor(db)
	repo := NewMovieRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "movies"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectRollback()

	boom := errors.New("boom")
	err := tx.WithinTransaction(context.Background(), func(ctx context.Context) error {
		if _, err := repo.Delete(ctx, 1, 1); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactorCommitsAndJoinsNestedCalls(t *testing.T) {
	db, mock := newMockDB(t)
	tx := NewTransactor(db)
	repo := NewMovieRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "movies"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "movies"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := tx.WithinTransaction(context.Background(), func(ctx context.Context) error {
		if _, err := repo.Delete(ctx, 1, 1); err != nil {
			return err
		}
		return tx.WithinTransaction(ctx, func(ctx context.Context) error {
			_, err := repo.Delete(ctx, 1, 2)
			return err
		})
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
