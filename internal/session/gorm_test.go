package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var fixedNow = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

func newMockStore(t *testing.T, ttl time.Duration) (*GormStore, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Discard,
	})
	require.NoError(t, err)

	store := NewGormStore(db, ttl)
	store.now = func() time.Time { return fixedNow }
	return store, mock
}

func TestGormStore_GetLiveRow(t *testing.T) {
	store, mock := newMockStore(t, time.Hour)
	rows := sqlmock.NewRows([]string{"id", "token", "created_at", "updated_at"}).
		AddRow("sid", "tok-1", fixedNow, fixedNow)
	mock.ExpectQuery(`SELECT \* FROM "admin_sessions" WHERE updated_at > \$1 AND id = \$2`).
		WillReturnRows(rows)

	tok, err := store.Get(context.Background(), "sid")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", tok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_GetMissingIsNotFound(t *testing.T) {
	store, mock := newMockStore(t, time.Hour)
	mock.ExpectQuery(`SELECT \* FROM "admin_sessions"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "token", "created_at", "updated_at"}))

	_, err := store.Get(context.Background(), "sid")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_PutInsertsAndPurges(t *testing.T) {
	store, mock := newMockStore(t, time.Hour)
	mock.ExpectExec(`INSERT INTO "admin_sessions"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "admin_sessions" WHERE updated_at <= \$1`).
		WithArgs(fixedNow.Add(-time.Hour)).
		WillReturnResult(sqlmock.NewResult(0, 3))

	require.NoError(t, store.Put(context.Background(), "sid", "tok-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_PutReplacesExistingToken(t *testing.T) {
	store, mock := newMockStore(t, time.Hour)
	mock.ExpectExec(`INSERT INTO "admin_sessions"`).WillReturnError(&pq.Error{Code: "23505"})
	mock.ExpectExec(`UPDATE "admin_sessions" SET "token"=\$1,"updated_at"=\$2 WHERE id = \$3`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "admin_sessions"`).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, store.Put(context.Background(), "sid", "tok-2"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_PutOtherErrorsSurface(t *testing.T) {
	store, mock := newMockStore(t, time.Hour)
	boom := errors.New("connection reset")
	mock.ExpectExec(`INSERT INTO "admin_sessions"`).WillReturnError(boom)

	err := store.Put(context.Background(), "sid", "tok-1")
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_Delete(t *testing.T) {
	store, mock := newMockStore(t, time.Hour)
	mock.ExpectExec(`DELETE FROM "admin_sessions" WHERE id = \$1`).
		WithArgs("sid").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "admin_sessions" WHERE id = \$1`).
		WithArgs("gone").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, store.Delete(context.Background(), "sid"))
	assert.ErrorIs(t, store.Delete(context.Background(), "gone"), ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
