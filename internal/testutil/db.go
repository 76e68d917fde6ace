// Package testutil provides an in-memory SQLite database whose schema
// mirrors the production migrations, so service and repository tests run
// without a PostgreSQL server.
package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

// Schema statements in SQLite dialect. Keep in step with the production
// migrations in internal/database.
var schema = []string{
	`CREATE TABLE leads (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		company_name TEXT NOT NULL,
		contact_name TEXT NOT NULL,
		contact_title TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL DEFAULT '',
		company_description TEXT NOT NULL DEFAULT '',
		lead_source TEXT NOT NULL DEFAULT '',
		current_stage TEXT NOT NULL DEFAULT 'INQUIRY',
		estimated_value REAL,
		next_follow_up_date TIMESTAMP,
		last_activity_date TIMESTAMP,
		next_action_type TEXT NOT NULL DEFAULT '',
		next_action_description TEXT NOT NULL DEFAULT '',
		next_action_due_date TIMESTAMP,
		is_archived BOOLEAN NOT NULL DEFAULT FALSE,
		archived_at TIMESTAMP,
		archive_reason TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,

	`CREATE TABLE stage_history (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		lead_id INTEGER NOT NULL REFERENCES leads(id) ON DELETE CASCADE,
		from_stage TEXT,
		to_stage TEXT NOT NULL,
		note TEXT NOT NULL DEFAULT '',
		changed_at TIMESTAMP NOT NULL
	)`,

	`CREATE TABLE activities (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		lead_id INTEGER NOT NULL REFERENCES leads(id) ON DELETE CASCADE,
		type TEXT NOT NULL,
		subject TEXT NOT NULL,
		notes TEXT NOT NULL DEFAULT '',
		completed BOOLEAN NOT NULL DEFAULT FALSE,
		completed_at TIMESTAMP,
		due_date TIMESTAMP,
		created_at TIMESTAMP NOT NULL
	)`,

	`CREATE TABLE lost_reasons (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		lead_id INTEGER NOT NULL UNIQUE REFERENCES leads(id) ON DELETE CASCADE,
		reason TEXT NOT NULL,
		competitor_name TEXT NOT NULL DEFAULT '',
		lost_date TIMESTAMP NOT NULL,
		notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,

	`CREATE TABLE organization_info (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		lead_id INTEGER NOT NULL UNIQUE REFERENCES leads(id) ON DELETE CASCADE,
		employee_count INTEGER,
		annual_revenue REAL,
		industry TEXT NOT NULL DEFAULT '',
		decision_maker TEXT NOT NULL DEFAULT '',
		decision_maker_role TEXT NOT NULL DEFAULT '',
		current_solution TEXT NOT NULL DEFAULT '',
		pain_points TEXT NOT NULL DEFAULT '',
		budget REAL,
		timeline TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,

	`CREATE TABLE demo_details (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		lead_id INTEGER NOT NULL UNIQUE REFERENCES leads(id) ON DELETE CASCADE,
		demo_date TIMESTAMP,
		demo_type TEXT NOT NULL DEFAULT 'ONLINE',
		attendees TEXT NOT NULL DEFAULT '',
		demo_outcome TEXT NOT NULL DEFAULT '',
		user_count_estimate INTEGER,
		follow_up_required BOOLEAN NOT NULL DEFAULT FALSE,
		notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,

	`CREATE TABLE proposals (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		lead_id INTEGER NOT NULL UNIQUE REFERENCES leads(id) ON DELETE CASCADE,
		proposal_date TIMESTAMP,
		estimated_value REAL,
		status TEXT NOT NULL DEFAULT 'DRAFT',
		valid_until TIMESTAMP,
		notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
}

// NewTestDB returns an in-memory database with the full schema applied. It
// is closed automatically when the test finishes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		t.Fatalf("enable foreign keys: %v", err)
	}
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("apply test schema: %v", err)
		}
	}

	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}
