package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/grievdesk/internal/common"
	"github.com/dmitrijs2005/grievdesk/internal/dbx"
)

// PostgresSource reads the catalog document stored under a name in the
// catalog_documents table. Every Publish bumps the revision, which is the
// fingerprint.
type PostgresSource struct {
	db   *sql.DB
	name string
}

func NewPostgresSource(db *sql.DB, name string) *PostgresSource {
	return &PostgresSource{db: db, name: name}
}

func (s *PostgresSource) Name() string { return "postgres:" + s.name }

func (s *PostgresSource) Fingerprint(ctx context.Context) (string, error) {
	rev, err := s.revision(ctx, s.db, false)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(rev, 10), nil
}

func (s *PostgresSource) Open(ctx context.Context) (io.ReadCloser, error) {
	query :=
		`SELECT body FROM catalog_documents
		 WHERE name = $1
		 `

	var body string
	err := s.db.QueryRowContext(ctx, query, s.name).Scan(&body)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return io.NopCloser(strings.NewReader(body)), nil
}

// Publish stores body as the new catalog document and returns its revision.
func (s *PostgresSource) Publish(ctx context.Context, body string) (int64, error) {
	return dbx.InTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) (int64, error) {
		current, err := s.revision(ctx, tx, true)
		if err != nil && !errors.Is(err, common.ErrorNotFound) {
			return 0, err
		}

		rev := current + 1
		if rev == 1 {
			_, err = tx.ExecContext(ctx,
				`INSERT INTO catalog_documents (name, body, revision, updated_at)
				 VALUES ($1, $2, $3, now())
				 `, s.name, body, rev)
		} else {
			_, err = tx.ExecContext(ctx,
				`UPDATE catalog_documents SET body = $2, revision = $3, updated_at = now()
				 WHERE name = $1
				 `, s.name, body, rev)
		}
		if err != nil {
			return 0, fmt.Errorf("db error: %w", err)
		}
		return rev, nil
	})
}

func (s *PostgresSource) revision(ctx context.Context, db dbx.DBTX, forUpdate bool) (int64, error) {
	query :=
		`SELECT revision FROM catalog_documents
		 WHERE name = $1
		 `
	if forUpdate {
		query += "FOR UPDATE"
	}

	var rev int64
	err := db.QueryRowContext(ctx, query, s.name).Scan(&rev)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, common.ErrorNotFound
		}
		return 0, fmt.Errorf("db error: %w", err)
	}
	return rev, nil
}
