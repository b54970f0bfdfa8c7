package storage

import (
	"context"
	"fmt"
)

const schemaVersion = 1

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS content.users (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT NOT NULL DEFAULT '',
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'donor' CHECK (role IN ('donor', 'coordinator', 'admin')),
		total_books_donated INTEGER NOT NULL DEFAULT 0 CHECK (total_books_donated >= 0),
		badge TEXT NOT NULL DEFAULT 'none' CHECK (badge IN ('none', 'bronze', 'silver', 'gold')),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT users_email_key UNIQUE (email)
	);`,
	`CREATE TABLE IF NOT EXISTS content.books (
		id UUID PRIMARY KEY,
		title TEXT NOT NULL,
		author TEXT NOT NULL,
		isbn TEXT NOT NULL DEFAULT '',
		genre TEXT NOT NULL DEFAULT '',
		age_category TEXT NOT NULL DEFAULT '' CHECK (age_category IN ('', '2-4', '4-6', '6-8', '8-10')),
		condition TEXT NOT NULL CHECK (condition IN ('Excellent', 'Good', 'Fair', 'Poor')),
		description TEXT NOT NULL DEFAULT '',
		language TEXT NOT NULL DEFAULT 'English',
		publication_year INTEGER,
		donor_id UUID NOT NULL REFERENCES content.users (id),
		status TEXT NOT NULL DEFAULT 'available' CHECK (status IN ('available', 'requested', 'donated')),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS books_status_created_idx ON content.books (status, created_at DESC);`,
	`CREATE INDEX IF NOT EXISTS books_donor_idx ON content.books (donor_id);`,
	`CREATE TABLE IF NOT EXISTS content.donation_requests (
		id UUID PRIMARY KEY,
		book_id UUID NOT NULL REFERENCES content.books (id),
		donor_id UUID NOT NULL REFERENCES content.users (id),
		recipient_id UUID NOT NULL REFERENCES content.users (id),
		status TEXT NOT NULL DEFAULT 'requested' CHECK (status IN ('requested', 'approved', 'in-transit', 'completed', 'cancelled')),
		request_message TEXT NOT NULL DEFAULT '',
		pickup_method TEXT NOT NULL CHECK (pickup_method IN ('pickup', 'delivery')),
		pickup_address JSONB,
		requested_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		approved_at TIMESTAMPTZ,
		completed_at TIMESTAMPTZ,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT chk_different_parties CHECK (donor_id <> recipient_id)
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS donation_requests_one_active_idx ON content.donation_requests (book_id)
		WHERE status IN ('requested', 'approved', 'in-transit');`,
	`CREATE TABLE IF NOT EXISTS content.donation_drives (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		location TEXT NOT NULL,
		gated_community TEXT NOT NULL,
		coordinator_id UUID NOT NULL REFERENCES content.users (id),
		start_date TIMESTAMPTZ NOT NULL,
		end_date TIMESTAMPTZ,
		status TEXT NOT NULL DEFAULT 'active' CHECK (status IN ('active', 'closed')),
		books_2_4 INTEGER NOT NULL DEFAULT 0 CHECK (books_2_4 >= 0),
		books_4_6 INTEGER NOT NULL DEFAULT 0 CHECK (books_4_6 >= 0),
		books_6_8 INTEGER NOT NULL DEFAULT 0 CHECK (books_6_8 >= 0),
		books_8_10 INTEGER NOT NULL DEFAULT 0 CHECK (books_8_10 >= 0),
		total_books_received INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT chk_drive_total CHECK (total_books_received = books_2_4 + books_4_6 + books_6_8 + books_8_10)
	);`,
	`CREATE TABLE IF NOT EXISTS content.donation_records (
		id UUID PRIMARY KEY,
		donor_id UUID NOT NULL REFERENCES content.users (id),
		drive_id UUID NOT NULL REFERENCES content.donation_drives (id),
		donation_date TIMESTAMPTZ NOT NULL,
		books_2_4 INTEGER NOT NULL DEFAULT 0 CHECK (books_2_4 >= 0),
		books_4_6 INTEGER NOT NULL DEFAULT 0 CHECK (books_4_6 >= 0),
		books_6_8 INTEGER NOT NULL DEFAULT 0 CHECK (books_6_8 >= 0),
		books_8_10 INTEGER NOT NULL DEFAULT 0 CHECK (books_8_10 >= 0),
		total_books INTEGER NOT NULL CHECK (total_books > 0),
		status TEXT NOT NULL DEFAULT 'submitted',
		collected_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS content.schools (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		street TEXT NOT NULL DEFAULT '',
		city TEXT NOT NULL DEFAULT '',
		state TEXT NOT NULL DEFAULT '',
		zip_code TEXT NOT NULL DEFAULT '',
		contact_name TEXT NOT NULL DEFAULT '',
		contact_phone TEXT NOT NULL DEFAULT '',
		contact_email TEXT NOT NULL DEFAULT '',
		students_count INTEGER NOT NULL DEFAULT 0 CHECK (students_count >= 0),
		total_books_received INTEGER NOT NULL DEFAULT 0 CHECK (total_books_received >= 0),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS content.book_allocations (
		id UUID PRIMARY KEY,
		drive_id UUID NOT NULL REFERENCES content.donation_drives (id),
		school_id UUID NOT NULL REFERENCES content.schools (id),
		allocated_by UUID NOT NULL REFERENCES content.users (id),
		books_2_4 INTEGER NOT NULL DEFAULT 0 CHECK (books_2_4 >= 0),
		books_4_6 INTEGER NOT NULL DEFAULT 0 CHECK (books_4_6 >= 0),
		books_6_8 INTEGER NOT NULL DEFAULT 0 CHECK (books_6_8 >= 0),
		books_8_10 INTEGER NOT NULL DEFAULT 0 CHECK (books_8_10 >= 0),
		total_books_allocated INTEGER NOT NULL CHECK (total_books_allocated > 0),
		notes TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'allocated',
		delivery_date TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
}

// Migrate creates the content schema and its tables when they are missing and
// records the applied schema version. It is safe to run on every start.
func (postgresql *PostgreSQL) Migrate(ctx context.Context) error {
	if _, err := postgresql.db.ExecContext(ctx, `CREATE SCHEMA IF NOT EXISTS content;`); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	if _, err := postgresql.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS content.schema_meta (key TEXT PRIMARY KEY, value INTEGER NOT NULL);`); err != nil {
		return fmt.Errorf("create schema_meta: %w", err)
	}

	var current int
	err := postgresql.db.QueryRowContext(ctx, `SELECT value FROM content.schema_meta WHERE key = 'schema_version';`).Scan(&current)
	if err == nil && current >= schemaVersion {
		return nil
	}

	tx, err := postgresql.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, stmt := range schemaStatements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			postgresql.log.Sugar().Errorf("Failed to apply migration statement: %s", err)
			return fmt.Errorf("apply migration: %w", err)
		}
	}

	const setVersionQuery = `INSERT INTO content.schema_meta (key, value) VALUES ('schema_version', $1)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value;`
	if _, err := tx.ExecContext(ctx, setVersionQuery, schemaVersion); err != nil {
		return fmt.Errorf("record schema version: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return err
	}

	postgresql.log.Sugar().Infof("Database schema migrated to version %d", schemaVersion)
	return nil
}
