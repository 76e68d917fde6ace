package database

// migrations is an ordered list of SQL migration groups. Each entry is a
// slice of statements executed together in one transaction; the version
// number is the 1-based index into this slice.
var migrations = [][]string{
	// Migration 1: leads and owned records
	{
		`CREATE TABLE leads (
			id BIGSERIAL PRIMARY KEY,
			company_name TEXT NOT NULL,
			contact_name TEXT NOT NULL,
			contact_title TEXT NOT NULL DEFAULT '',
			phone TEXT NOT NULL DEFAULT '',
			email TEXT NOT NULL DEFAULT '',
			company_description TEXT NOT NULL DEFAULT '',
			lead_source TEXT NOT NULL DEFAULT '',
			current_stage TEXT NOT NULL DEFAULT 'INQUIRY',
			estimated_value DOUBLE PRECISION,
			next_follow_up_date TIMESTAMPTZ,
			last_activity_date TIMESTAMPTZ,
			next_action_type TEXT NOT NULL DEFAULT '',
			next_action_description TEXT NOT NULL DEFAULT '',
			next_action_due_date TIMESTAMPTZ,
			is_archived BOOLEAN NOT NULL DEFAULT FALSE,
			archived_at TIMESTAMPTZ,
			archive_reason TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`,

		`CREATE TABLE stage_history (
			id BIGSERIAL PRIMARY KEY,
			lead_id BIGINT NOT NULL REFERENCES leads(id) ON DELETE CASCADE,
			from_stage TEXT,
			to_stage TEXT NOT NULL,
			note TEXT NOT NULL DEFAULT '',
			changed_at TIMESTAMPTZ NOT NULL
		)`,

		`CREATE TABLE activities (
			id BIGSERIAL PRIMARY KEY,
			lead_id BIGINT NOT NULL REFERENCES leads(id) ON DELETE CASCADE,
			type TEXT NOT NULL,
			subject TEXT NOT NULL,
			notes TEXT NOT NULL DEFAULT '',
			completed BOOLEAN NOT NULL DEFAULT FALSE,
			completed_at TIMESTAMPTZ,
			due_date TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL
		)`,

		`CREATE TABLE lost_reasons (
			id BIGSERIAL PRIMARY KEY,
			lead_id BIGINT NOT NULL UNIQUE REFERENCES leads(id) ON DELETE CASCADE,
			reason TEXT NOT NULL,
			competitor_name TEXT NOT NULL DEFAULT '',
			lost_date TIMESTAMPTZ NOT NULL,
			notes TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`,

		`CREATE TABLE organization_info (
			id BIGSERIAL PRIMARY KEY,
			lead_id BIGINT NOT NULL UNIQUE REFERENCES leads(id) ON DELETE CASCADE,
			employee_count INTEGER,
			annual_revenue DOUBLE PRECISION,
			industry TEXT NOT NULL DEFAULT '',
			decision_maker TEXT NOT NULL DEFAULT '',
			decision_maker_role TEXT NOT NULL DEFAULT '',
			current_solution TEXT NOT NULL DEFAULT '',
			pain_points TEXT NOT NULL DEFAULT '',
			budget DOUBLE PRECISION,
			timeline TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`,

		`CREATE TABLE demo_details (
			id BIGSERIAL PRIMARY KEY,
			lead_id BIGINT NOT NULL UNIQUE REFERENCES leads(id) ON DELETE CASCADE,
			demo_date TIMESTAMPTZ,
			demo_type TEXT NOT NULL DEFAULT 'ONLINE',
			attendees TEXT NOT NULL DEFAULT '',
			demo_outcome TEXT NOT NULL DEFAULT '',
			user_count_estimate INTEGER,
			follow_up_required BOOLEAN NOT NULL DEFAULT FALSE,
			notes TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`,

		`CREATE TABLE proposals (
			id BIGSERIAL PRIMARY KEY,
			lead_id BIGINT NOT NULL UNIQUE REFERENCES leads(id) ON DELETE CASCADE,
			proposal_date TIMESTAMPTZ,
			estimated_value DOUBLE PRECISION,
			status TEXT NOT NULL DEFAULT 'DRAFT',
			valid_until TIMESTAMPTZ,
			notes TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`,

		`CREATE INDEX idx_leads_stage ON leads(current_stage)`,
		`CREATE INDEX idx_leads_follow_up ON leads(next_follow_up_date) WHERE next_follow_up_date IS NOT NULL`,
		`CREATE INDEX idx_leads_next_action ON leads(next_action_due_date) WHERE next_action_due_date IS NOT NULL`,
		`CREATE INDEX idx_stage_history_lead ON stage_history(lead_id)`,
		`CREATE INDEX idx_activities_lead ON activities(lead_id, created_at DESC)`,
	},
}
