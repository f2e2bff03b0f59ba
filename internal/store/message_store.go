package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/insightai/site/internal/model"
)

const schema = `
	CREATE TABLE IF NOT EXISTS locale_messages (
		locale     TEXT PRIMARY KEY,
		document   JSON NOT NULL,
		checksum   TEXT NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)
`

// MessageStore keeps raw locale message documents in Postgres
type MessageStore struct {
	db *sql.DB
}

// NewMessageStore creates a new MessageStore
func NewMessageStore(db *sql.DB) *MessageStore {
	return &MessageStore{db: db}
}

// EnsureSchema creates the locale_messages table if it does not exist
func (s *MessageStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create locale_messages table: %w", err)
	}
	return nil
}

// Messages returns the stored document for a locale.
// The column is JSON rather than JSONB because JSONB reorders object keys.
func (s *MessageStore) Messages(ctx context.Context, locale model.Locale) ([]byte, error) {
	query := `
		SELECT document::text
		FROM locale_messages
		WHERE locale = $1
	`

	var document string
	err := s.db.QueryRowContext(ctx, query, string(locale)).Scan(&document)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, locale)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get messages for %s: %w", locale, err)
	}

	return []byte(document), nil
}

// Checksum returns the checksum of the stored document, or "" when none is stored
func (s *MessageStore) Checksum(ctx context.Context, locale model.Locale) (string, error) {
	query := `SELECT checksum FROM locale_messages WHERE locale = $1`

	var checksum string
	err := s.db.QueryRowContext(ctx, query, string(locale)).Scan(&checksum)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get checksum for %s: %w", locale, err)
	}
	return checksum, nil
}

// Upsert inserts or replaces the document for a locale
func (s *MessageStore) Upsert(ctx context.Context, locale model.Locale, document []byte, checksum string) error {
	query := `
		INSERT INTO locale_messages (locale, document, checksum, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (locale) DO UPDATE SET
			document = EXCLUDED.document,
			checksum = EXCLUDED.checksum,
			updated_at = NOW()
	`

	_, err := s.db.ExecContext(ctx, query, string(locale), string(document), checksum)
	if err != nil {
		return fmt.Errorf("failed to upsert messages for %s: %w", locale, err)
	}
	return nil
}

// Locales returns the locales that have a stored document
func (s *MessageStore) Locales(ctx context.Context) ([]model.Locale, error) {
	query := `SELECT locale FROM locale_messages ORDER BY locale`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list locales: %w", err)
	}
	defer rows.Close()

	var locales []model.Locale
	for rows.Next() {
		var l string
		if err := rows.Scan(&l); err != nil {
			return nil, fmt.Errorf("failed to scan locale: %w", err)
		}
		locales = append(locales, model.Locale(l))
	}

	return locales, rows.Err()
}
