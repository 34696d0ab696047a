package kv

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockStore(t *testing.T) (*SQLStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresStore(db), mock
}

func TestPostgres_GetUsesDollarPlaceholders(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT value FROM kv_store WHERE key = $1`)).
		WithArgs("water_history").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(`{"2024-01-01":{}}`))

	v, err := s.Get(context.Background(), "water_history")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"2024-01-01":{}}`), v)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_GetMissingRow(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT value FROM kv_store WHERE key = $1`)).
		WithArgs("nope").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	v, err := s.Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, v)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_SetUpserts(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO kv_store (key, value) VALUES ($1, $2)`)).
		WithArgs("focus_sessions", `[]`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.Set(context.Background(), "focus_sessions", []byte(`[]`)))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_SetManyCommits(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO kv_store`)).
		WithArgs("a", "1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, s.SetMany(context.Background(), map[string][]byte{"a": []byte("1")}))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_SetManyRollsBackOnError(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO kv_store`)).
		WithArgs("a", "1").
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	err := s.SetMany(context.Background(), map[string][]byte{"a": []byte("1")})
	require.ErrorContains(t, err, "failed to set kv[a]")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_DeleteAndClear(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM kv_store WHERE key = $1`)).
		WithArgs("k").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM kv_store`)).
		WillReturnResult(sqlmock.NewResult(0, 3))

	ctx := context.Background()
	require.NoError(t, s.Delete(ctx, "k"))
	require.NoError(t, s.Clear(ctx))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_List(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT key, value FROM kv_store`)).
		WillReturnRows(sqlmock.NewRows([]string{"key", "value"}).
			AddRow("a", "1").
			AddRow("b", "2"))

	m, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string][]byte{"a": []byte("1"), "b": []byte("2")}, m)
	require.NoError(t, mock.ExpectationsWereMet())
}
