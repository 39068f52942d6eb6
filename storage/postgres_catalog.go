package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"educonnect/models"
	"educonnect/utils"
)

// PostgresCatalog stores the housing catalog in PostgreSQL so it can be
// edited outside the binary. It serves as a ListingSource.
type PostgresCatalog struct {
	db *sql.DB
}

// NewPostgresCatalog opens a connection, waits for the server using retry,
// runs schema migrations and returns a ready-to-use catalog.
func NewPostgresCatalog(ctx context.Context, dsn string, retry *utils.RetryConfig) (*PostgresCatalog, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	if err := retry.Do(ctx, "postgres-ping", db.PingContext); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: %w", err)
	}

	pc := &PostgresCatalog{db: db}
	if err := pc.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: migrate: %w", err)
	}
	return pc, nil
}

func (pc *PostgresCatalog) migrate(ctx context.Context) error {
	_, err := pc.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS housing_listings (
			id          INTEGER       PRIMARY KEY,
			title       TEXT          NOT NULL,
			address     TEXT          NOT NULL DEFAULT '',
			price       INTEGER       NOT NULL DEFAULT 0,
			room_type   VARCHAR(32)   NOT NULL,
			amenities   TEXT[]        NOT NULL DEFAULT '{}',
			university  TEXT          NOT NULL DEFAULT '',
			distance    VARCHAR(32)   NOT NULL DEFAULT '',
			rating      NUMERIC(3,2)  NOT NULL DEFAULT 0,
			reviews     INTEGER       NOT NULL DEFAULT 0,
			homeowner   TEXT          NOT NULL DEFAULT '',
			description TEXT          NOT NULL DEFAULT '',
			available   BOOLEAN       NOT NULL DEFAULT TRUE,
			inquiries   INTEGER       NOT NULL DEFAULT 0,
			views       INTEGER       NOT NULL DEFAULT 0,
			position    SERIAL
		);

		CREATE INDEX IF NOT EXISTS idx_housing_price      ON housing_listings(price);
		CREATE INDEX IF NOT EXISTS idx_housing_university ON housing_listings(university);
	`)
	return err
}

// Seed replaces the catalog with rows, keeping their order.
func (pc *PostgresCatalog) Seed(ctx context.Context, rows []*models.RawListing) error {
	tx, err := pc.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("postgres: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM housing_listings"); err != nil {
		return fmt.Errorf("postgres: clear: %w", err)
	}

	const batchSize = 50
	for i := 0; i < len(rows); i += batchSize {
		end := i + batchSize
		if end > len(rows) {
			end = len(rows)
		}
		if err := insertBatch(ctx, tx, rows[i:end]); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("postgres: commit: %w", err)
	}
	return nil
}

const listingColumns = 15

func insertBatch(ctx context.Context, tx *sql.Tx, batch []*models.RawListing) error {
	valueStrings := make([]string, 0, len(batch))
	valueArgs := make([]interface{}, 0, len(batch)*listingColumns)

	for idx, l := range batch {
		base := idx * listingColumns
		ph := make([]string, listingColumns)
		for c := range ph {
			ph[c] = fmt.Sprintf("$%d", base+c+1)
		}
		valueStrings = append(valueStrings, "("+strings.Join(ph, ",")+")")
		valueArgs = append(valueArgs,
			l.ID, l.Title, l.Address, l.Price, l.RoomType, pq.Array(l.Amenities),
			l.University, l.Distance, l.Rating, l.Reviews, l.Homeowner,
			l.Description, l.Available, l.Inquiries, l.Views)
	}

	query := fmt.Sprintf(`
		INSERT INTO housing_listings (id, title, address, price, room_type, amenities,
			university, distance, rating, reviews, homeowner, description,
			available, inquiries, views)
		VALUES %s
		ON CONFLICT (id) DO NOTHING
	`, strings.Join(valueStrings, ","))

	if _, err := tx.ExecContext(ctx, query, valueArgs...); err != nil {
		return fmt.Errorf("postgres: insert batch: %w", err)
	}
	return nil
}

// FetchAll returns the catalog in insertion order.
func (pc *PostgresCatalog) FetchAll(ctx context.Context) ([]*models.RawListing, error) {
	rows, err := pc.db.QueryContext(ctx, `
		SELECT id, title, address, price, room_type, amenities, university, distance,
		       rating, reviews, homeowner, description, available, inquiries, views
		FROM housing_listings
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("postgres: fetch all: %w", err)
	}
	defer rows.Close()

	var listings []*models.RawListing
	for rows.Next() {
		l := &models.RawListing{}
		if err := rows.Scan(
			&l.ID, &l.Title, &l.Address, &l.Price, &l.RoomType, pq.Array(&l.Amenities),
			&l.University, &l.Distance, &l.Rating, &l.Reviews, &l.Homeowner,
			&l.Description, &l.Available, &l.Inquiries, &l.Views,
		); err != nil {
			return nil, fmt.Errorf("postgres: scan row: %w", err)
		}
		listings = append(listings, l)
	}
	return listings, rows.Err()
}

func (pc *PostgresCatalog) Close() error {
	return pc.db.Close()
}
