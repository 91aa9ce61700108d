package alertledger

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"sessionwatch/lib/timezone"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
	_ "modernc.org/sqlite"
)

// DBConfig selects the backing database for Store: a local sqlite file,
// or a remote libsql url when Url is set.
type DBConfig struct {
	File      string `json:"file"`
	Url       string `json:"url"`
	AuthToken string `json:"auth_token"`
}

func (c DBConfig) OpenDB() (*sql.DB, error) {
	if c.Url == "" {
		return sql.Open("sqlite", c.File)
	}

	link, err := url.Parse(c.Url)
	if err != nil {
		return nil, fmt.Errorf("invalid ledger database url: %w", err)
	}
	if c.AuthToken != "" {
		query := link.Query()
		query.Set("authToken", c.AuthToken)
		link.RawQuery = query.Encode()
	}
	return sql.Open("libsql", link.String())
}

// Store keeps the ledger in a single-table database, preserving the same
// write-once, read-before-decide, never-delete semantics as FileLedger.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	_, err := db.Exec(Schema)
	if err != nil {
		return Store{}, err
	}
	return Store{db: db}, nil
}

func (s Store) Has(ctx context.Context, token string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(
		ctx,
		`SELECT EXISTS (SELECT 1 FROM alerted WHERE token = ?)`,
		token,
	).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (s Store) Mark(ctx context.Context, token string) error {
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO alerted (token, at) VALUES (?, ?)
		 ON CONFLICT (token) DO NOTHING`,
		token,
		timezone.Now().Unix(),
	)
	return err
}

func (s Store) List(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT token FROM alerted ORDER BY token`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tokens []string
	for rows.Next() {
		var token string
		if err := rows.Scan(&token); err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
	}
	return tokens, rows.Err()
}
