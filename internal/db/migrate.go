package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS capacity_config (
		id                    INTEGER PRIMARY KEY CHECK (id = 1),
		working_days_per_year INTEGER NOT NULL DEFAULT 261
	)`,

	`CREATE TABLE IF NOT EXISTS teams (
		id       TEXT PRIMARY KEY,
		name     TEXT NOT NULL,
		identity TEXT NOT NULL DEFAULT '',
		ord      INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS goals (
		id              TEXT PRIMARY KEY,
		title           TEXT NOT NULL,
		start_date      TEXT NOT NULL DEFAULT '',
		target_due_date TEXT NOT NULL DEFAULT '',
		ord             INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS goal_initiatives (
		goal_id       TEXT NOT NULL REFERENCES goals(id) ON DELETE CASCADE,
		initiative_id TEXT NOT NULL,
		ord           INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (goal_id, initiative_id)
	)`,

	`CREATE TABLE IF NOT EXISTS initiatives (
		id              TEXT PRIMARY KEY,
		goal_id         TEXT NOT NULL DEFAULT '',
		title           TEXT NOT NULL,
		planning_year   INTEGER NOT NULL DEFAULT 0,
		start_date      TEXT NOT NULL DEFAULT '',
		target_due_date TEXT NOT NULL DEFAULT '',
		status          TEXT NOT NULL DEFAULT 'Backlog',
		ord             INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS initiative_allocations (
		initiative_id TEXT NOT NULL REFERENCES initiatives(id) ON DELETE CASCADE,
		team_id       TEXT NOT NULL,
		sde_years     REAL NOT NULL DEFAULT 0,
		ord           INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS initiative_dependencies (
		initiative_id TEXT NOT NULL REFERENCES initiatives(id) ON DELETE CASCADE,
		depends_on_id TEXT NOT NULL,
		ord           INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS work_packages (
		id            TEXT PRIMARY KEY,
		initiative_id TEXT NOT NULL REFERENCES initiatives(id) ON DELETE CASCADE,
		title         TEXT NOT NULL,
		start_date    TEXT NOT NULL DEFAULT '',
		end_date      TEXT NOT NULL DEFAULT '',
		status        TEXT NOT NULL DEFAULT 'Planned',
		ord           INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS wp_dependencies (
		work_package_id TEXT NOT NULL REFERENCES work_packages(id) ON DELETE CASCADE,
		depends_on_id   TEXT NOT NULL,
		ord             INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS wp_assignments (
		work_package_id TEXT NOT NULL REFERENCES work_packages(id) ON DELETE CASCADE,
		team_id         TEXT NOT NULL DEFAULT '',
		sde_days        REAL NOT NULL DEFAULT 0,
		start_date      TEXT NOT NULL DEFAULT '',
		end_date        TEXT NOT NULL DEFAULT '',
		ord             INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS wp_assignment_predecessors (
		work_package_id TEXT NOT NULL REFERENCES work_packages(id) ON DELETE CASCADE,
		team_id         TEXT NOT NULL DEFAULT '',
		predecessor_id  TEXT NOT NULL,
		ord             INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS delivery_phases (
		work_package_id TEXT NOT NULL REFERENCES work_packages(id) ON DELETE CASCADE,
		phase_id        TEXT NOT NULL,
		name            TEXT NOT NULL,
		start_date      TEXT NOT NULL DEFAULT '',
		end_date        TEXT NOT NULL DEFAULT '',
		status          TEXT NOT NULL DEFAULT 'Planned',
		ord             INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE INDEX IF NOT EXISTS idx_work_packages_initiative ON work_packages(initiative_id)`,
	`CREATE INDEX IF NOT EXISTS idx_wp_assignments_wp ON wp_assignments(work_package_id)`,
	`CREATE INDEX IF NOT EXISTS idx_delivery_phases_wp ON delivery_phases(work_package_id)`,
}
