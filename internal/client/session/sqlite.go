package session

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/eventposter/internal/client/migrations"
	"github.com/dmitrijs2005/eventposter/internal/dbx"
)

// SQLiteStorage persists the session pair in a small local SQLite database,
// one row per key. Save writes both rows in a single transaction so other
// processes sharing the file never observe half a session.
type SQLiteStorage struct {
	db *sql.DB
}

// OpenDatabase opens (creating if needed) the local session database at dsn
// and applies the embedded migrations.
func OpenDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open session db: %w", err)
	}

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return nil, fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return nil, fmt.Errorf("failed to run session db migrations: %w", err)
	}

	return db, nil
}

func NewSQLiteStorage(db *sql.DB) *SQLiteStorage {
	return &SQLiteStorage{db: db}
}

func (s *SQLiteStorage) get(ctx context.Context, q dbx.DBTX, key string) ([]byte, error) {
	var value []byte
	err := q.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session[%s]: %w", key, err)
	}
	return value, nil
}

func (s *SQLiteStorage) Load(ctx context.Context) ([]byte, []byte, error) {
	token, err := s.get(ctx, s.db, keyToken)
	if err != nil {
		return nil, nil, err
	}
	user, err := s.get(ctx, s.db, keyUser)
	if err != nil {
		return nil, nil, err
	}
	return token, user, nil
}

func (s *SQLiteStorage) Save(ctx context.Context, token, user []byte) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for _, kv := range []struct {
			key   string
			value []byte
		}{
			{keyToken, token},
			{keyUser, user},
		} {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO session (key, value) VALUES (?, ?)
				ON CONFLICT(key) DO UPDATE SET value = excluded.value
			`, kv.key, kv.value)
			if err != nil {
				return fmt.Errorf("failed to set session[%s]: %w", kv.key, err)
			}
		}
		return nil
	})
}

func (s *SQLiteStorage) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM session`)
	if err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
