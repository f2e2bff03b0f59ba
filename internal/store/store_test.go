package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"testing/fstest"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insightai/site/internal/model"
)

func TestFSSource(t *testing.T) {
	source := NewFSSource(fstest.MapFS{
		"en.json": {Data: []byte(`{"a":"b"}`)},
	})

	data, err := source.Messages(context.Background(), model.LocaleEN)
	require.NoError(t, err)
	assert.Equal(t, `{"a":"b"}`, string(data))

	_, err = source.Messages(context.Background(), model.LocaleVI)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFSSourceHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewFSSource(fstest.MapFS{}).Messages(ctx, model.LocaleEN)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDirSource(t *testing.T) {
	_, err := NewDirSource(t.TempDir()).Messages(context.Background(), model.LocaleEN)
	assert.ErrorIs(t, err, ErrNotFound)
}

func newMockStore(t *testing.T) (*MessageStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewMessageStore(db), mock
}

func TestMessageStoreMessages(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT document::text")).
		WithArgs("en").
		WillReturnRows(sqlmock.NewRows([]string{"document"}).AddRow(`{"b":"1","a":"2"}`))

	data, err := s.Messages(context.Background(), model.LocaleEN)
	require.NoError(t, err)
	assert.Equal(t, `{"b":"1","a":"2"}`, string(data))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMessageStoreMessagesNotFound(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT document::text")).
		WithArgs("vi").
		WillReturnRows(sqlmock.NewRows([]string{"document"}))

	_, err := s.Messages(context.Background(), model.LocaleVI)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMessageStoreMessagesQueryError(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT document::text")).
		WithArgs("en").
		WillReturnError(errors.New("connection reset"))

	_, err := s.Messages(context.Background(), model.LocaleEN)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestMessageStoreChecksum(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT checksum FROM locale_messages")).
		WithArgs("en").
		WillReturnRows(sqlmock.NewRows([]string{"checksum"}).AddRow("abc"))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT checksum FROM locale_messages")).
		WithArgs("vi").
		WillReturnRows(sqlmock.NewRows([]string{"checksum"}))

	sum, err := s.Checksum(context.Background(), model.LocaleEN)
	require.NoError(t, err)
	assert.Equal(t, "abc", sum)

	sum, err = s.Checksum(context.Background(), model.LocaleVI)
	require.NoError(t, err)
	assert.Empty(t, sum)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMessageStoreUpsert(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO locale_messages")).
		WithArgs("vi", `{"a":"b"}`, "sum").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.Upsert(context.Background(), model.LocaleVI, []byte(`{"a":"b"}`), "sum"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMessageStoreLocales(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT locale FROM locale_messages ORDER BY locale")).
		WillReturnRows(sqlmock.NewRows([]string{"locale"}).AddRow("en").AddRow("vi"))

	got, err := s.Locales(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []model.Locale{model.LocaleEN, model.LocaleVI}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMessageStoreEnsureSchema(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS locale_messages")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, s.EnsureSchema(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
