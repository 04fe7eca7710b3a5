package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'quote_request_status') THEN
			CREATE TYPE quote_request_status AS ENUM ('pending', 'quoted', 'accepted', 'declined', 'completed');
		END IF;
	END
	$$;`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'quotation_status') THEN
			CREATE TYPE quotation_status AS ENUM ('pending', 'accepted', 'declined');
		END IF;
	END
	$$;`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'sender_type') THEN
			CREATE TYPE sender_type AS ENUM ('admin', 'customer');
		END IF;
	END
	$$;`,
	`CREATE TABLE IF NOT EXISTS quote_requests (
		id BIGSERIAL PRIMARY KEY,
		customer_name TEXT NOT NULL,
		customer_email TEXT NOT NULL,
		customer_phone TEXT NOT NULL,
		services_needed TEXT NOT NULL,
		deadline_date TIMESTAMPTZ NOT NULL,
		message TEXT NOT NULL DEFAULT '',
		status quote_request_status NOT NULL DEFAULT 'pending',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS quotations (
		id BIGSERIAL PRIMARY KEY,
		quote_request_id BIGINT NOT NULL REFERENCES quote_requests(id),
		price_amount BIGINT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		validity_date TIMESTAMPTZ NOT NULL,
		status quotation_status NOT NULL DEFAULT 'pending',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS messages (
		id BIGSERIAL PRIMARY KEY,
		quote_request_id BIGINT NOT NULL REFERENCES quote_requests(id),
		sender_type sender_type NOT NULL,
		content TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS user_profiles (
		user_id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS admin_users (
		user_id UUID PRIMARY KEY,
		granted_by UUID,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_quotations_quote_request_id ON quotations (quote_request_id);`,
	`CREATE INDEX IF NOT EXISTS idx_messages_quote_request_id ON messages (quote_request_id);`,
	`CREATE INDEX IF NOT EXISTS idx_quote_requests_status ON quote_requests (status);`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
