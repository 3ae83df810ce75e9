package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/horizon/internal/domain"
)

// SQLitePlanRepo implements PlanRepo using a SQLite database.
type SQLitePlanRepo struct {
	db *sql.DB
}

// NewSQLitePlanRepo creates a new SQLitePlanRepo.
func NewSQLitePlanRepo(db *sql.DB) *SQLitePlanRepo {
	return &SQLitePlanRepo{db: db}
}

func (r *SQLitePlanRepo) Load(ctx context.Context) (*domain.PlanDocument, error) {
	doc := domain.NewPlanDocument()

	var workingDays int
	err := r.db.QueryRowContext(ctx, `SELECT working_days_per_year FROM capacity_config WHERE id = 1`).Scan(&workingDays)
	switch {
	case err == sql.ErrNoRows:
		// fresh database, defaults apply
	case err != nil:
		return nil, fmt.Errorf("loading capacity config: %w", err)
	default:
		doc.Capacity.WorkingDaysPerYear = workingDays
	}

	if err := r.loadTeams(ctx, doc); err != nil {
		return nil, err
	}
	if err := r.loadGoals(ctx, doc); err != nil {
		return nil, err
	}
	if err := r.loadInitiatives(ctx, doc); err != nil {
		return nil, err
	}
	if err := r.loadWorkPackages(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (r *SQLitePlanRepo) loadTeams(ctx context.Context, doc *domain.PlanDocument) error {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, identity FROM teams ORDER BY ord, id`)
	if err != nil {
		return fmt.Errorf("loading teams: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var t domain.Team
		if err := rows.Scan(&t.ID, &t.Name, &t.Identity); err != nil {
			return fmt.Errorf("scanning team: %w", err)
		}
		doc.Teams = append(doc.Teams, t)
	}
	return rows.Err()
}

func (r *SQLitePlanRepo) loadGoals(ctx context.Context, doc *domain.PlanDocument) error {
	rows, err := r.db.QueryContext(ctx, `SELECT id, title, start_date, target_due_date FROM goals ORDER BY ord, id`)
	if err != nil {
		return fmt.Errorf("loading goals: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		g := &domain.Goal{}
		if err := rows.Scan(&g.ID, &g.Title, &g.StartDate, &g.TargetDueDate); err != nil {
			return fmt.Errorf("scanning goal: %w", err)
		}
		doc.Goals = append(doc.Goals, g)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	links, err := r.db.QueryContext(ctx, `SELECT goal_id, initiative_id FROM goal_initiatives ORDER BY goal_id, ord`)
	if err != nil {
		return fmt.Errorf("loading goal initiatives: %w", err)
	}
	defer links.Close()
	for links.Next() {
		var goalID, initiativeID string
		if err := links.Scan(&goalID, &initiativeID); err != nil {
			return fmt.Errorf("scanning goal initiative: %w", err)
		}
		if g := doc.Goal(goalID); g != nil {
			g.InitiativeIDs = append(g.InitiativeIDs, initiativeID)
		}
	}
	return links.Err()
}

func (r *SQLitePlanRepo) loadInitiatives(ctx context.Context, doc *domain.PlanDocument) error {
	rows, err := r.db.QueryContext(ctx, `SELECT id, goal_id, title, planning_year, start_date, target_due_date, status
		FROM initiatives ORDER BY ord, id`)
	if err != nil {
		return fmt.Errorf("loading initiatives: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		init := &domain.Initiative{}
		var status string
		if err := rows.Scan(&init.ID, &init.GoalID, &init.Title, &init.PlanningYear,
			&init.StartDate, &init.TargetDueDate, &status); err != nil {
			return fmt.Errorf("scanning initiative: %w", err)
		}
		init.Status = domain.InitiativeStatus(status)
		doc.Initiatives = append(doc.Initiatives, init)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	allocs, err := r.db.QueryContext(ctx, `SELECT initiative_id, team_id, sde_years
		FROM initiative_allocations ORDER BY initiative_id, ord`)
	if err != nil {
		return fmt.Errorf("loading initiative allocations: %w", err)
	}
	defer allocs.Close()
	for allocs.Next() {
		var initiativeID string
		var alloc domain.TeamAllocation
		if err := allocs.Scan(&initiativeID, &alloc.TeamID, &alloc.SDEYears); err != nil {
			return fmt.Errorf("scanning initiative allocation: %w", err)
		}
		if init := doc.Initiative(initiativeID); init != nil {
			init.Allocations = append(init.Allocations, alloc)
		}
	}
	if err := allocs.Err(); err != nil {
		return err
	}

	deps, err := r.db.QueryContext(ctx, `SELECT initiative_id, depends_on_id
		FROM initiative_dependencies ORDER BY initiative_id, ord`)
	if err != nil {
		return fmt.Errorf("loading initiative dependencies: %w", err)
	}
	defer deps.Close()
	for deps.Next() {
		var initiativeID, dependsOn string
		if err := deps.Scan(&initiativeID, &dependsOn); err != nil {
			return fmt.Errorf("scanning initiative dependency: %w", err)
		}
		if init := doc.Initiative(initiativeID); init != nil {
			init.Dependencies = append(init.Dependencies, dependsOn)
		}
	}
	return deps.Err()
}

func (r *SQLitePlanRepo) loadWorkPackages(ctx context.Context, doc *domain.PlanDocument) error {
	rows, err := r.db.QueryContext(ctx, `SELECT id, initiative_id, title, start_date, end_date, status
		FROM work_packages ORDER BY ord, id`)
	if err != nil {
		return fmt.Errorf("loading work packages: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		wp := &domain.WorkPackage{}
		var status string
		if err := rows.Scan(&wp.ID, &wp.InitiativeID, &wp.Title, &wp.StartDate, &wp.EndDate, &status); err != nil {
			return fmt.Errorf("scanning work package: %w", err)
		}
		wp.Status = domain.WorkPackageStatus(status)
		doc.WorkPackages = append(doc.WorkPackages, wp)
		if init := doc.Initiative(wp.InitiativeID); init != nil {
			init.AddWorkPackageID(wp.ID)
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	deps, err := r.db.QueryContext(ctx, `SELECT work_package_id, depends_on_id
		FROM wp_dependencies ORDER BY work_package_id, ord`)
	if err != nil {
		return fmt.Errorf("loading wp dependencies: %w", err)
	}
	defer deps.Close()
	for deps.Next() {
		var wpID, dependsOn string
		if err := deps.Scan(&wpID, &dependsOn); err != nil {
			return fmt.Errorf("scanning wp dependency: %w", err)
		}
		if wp := doc.WorkPackage(wpID); wp != nil {
			wp.Dependencies = append(wp.Dependencies, dependsOn)
		}
	}
	if err := deps.Err(); err != nil {
		return err
	}

	assigns, err := r.db.QueryContext(ctx, `SELECT work_package_id, team_id, sde_days, start_date, end_date
		FROM wp_assignments ORDER BY work_package_id, ord`)
	if err != nil {
		return fmt.Errorf("loading wp assignments: %w", err)
	}
	defer assigns.Close()
	for assigns.Next() {
		var wpID string
		a := &domain.Assignment{}
		if err := assigns.Scan(&wpID, &a.TeamID, &a.SDEDays, &a.StartDate, &a.EndDate); err != nil {
			return fmt.Errorf("scanning wp assignment: %w", err)
		}
		if wp := doc.WorkPackage(wpID); wp != nil {
			wp.Assignments = append(wp.Assignments, a)
		}
	}
	if err := assigns.Err(); err != nil {
		return err
	}

	preds, err := r.db.QueryContext(ctx, `SELECT work_package_id, team_id, predecessor_id
		FROM wp_assignment_predecessors ORDER BY work_package_id, ord`)
	if err != nil {
		return fmt.Errorf("loading assignment predecessors: %w", err)
	}
	defer preds.Close()
	for preds.Next() {
		var wpID, teamID, predecessorID string
		if err := preds.Scan(&wpID, &teamID, &predecessorID); err != nil {
			return fmt.Errorf("scanning assignment predecessor: %w", err)
		}
		if wp := doc.WorkPackage(wpID); wp != nil {
			if a := wp.Assignment(teamID); a != nil {
				a.Predecessors = append(a.Predecessors, predecessorID)
			}
		}
	}
	if err := preds.Err(); err != nil {
		return err
	}

	phases, err := r.db.QueryContext(ctx, `SELECT work_package_id, phase_id, name, start_date, end_date, status
		FROM delivery_phases ORDER BY work_package_id, ord`)
	if err != nil {
		return fmt.Errorf("loading delivery phases: %w", err)
	}
	defer phases.Close()
	for phases.Next() {
		var wpID, status string
		var p domain.DeliveryPhase
		if err := phases.Scan(&wpID, &p.ID, &p.Name, &p.StartDate, &p.EndDate, &status); err != nil {
			return fmt.Errorf("scanning delivery phase: %w", err)
		}
		p.Status = domain.PhaseStatus(status)
		if wp := doc.WorkPackage(wpID); wp != nil {
			wp.Phases = append(wp.Phases, p)
		}
	}
	return phases.Err()
}

// Save replaces the stored document in a single transaction.
func (r *SQLitePlanRepo) Save(ctx context.Context, doc *domain.PlanDocument) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting save transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	// Child tables cascade from their parents.
	for _, table := range []string{"teams", "goals", "initiatives", "capacity_config"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO capacity_config (id, working_days_per_year) VALUES (1, ?)`,
		doc.WorkingDaysPerYear()); err != nil {
		return fmt.Errorf("saving capacity config: %w", err)
	}

	for i, t := range doc.Teams {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO teams (id, name, identity, ord) VALUES (?, ?, ?, ?)`,
			t.ID, t.Name, t.Identity, i); err != nil {
			return fmt.Errorf("saving team %s: %w", t.ID, err)
		}
	}

	for i, g := range doc.Goals {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO goals (id, title, start_date, target_due_date, ord) VALUES (?, ?, ?, ?, ?)`,
			g.ID, g.Title, g.StartDate, g.TargetDueDate, i); err != nil {
			return fmt.Errorf("saving goal %s: %w", g.ID, err)
		}
		for j, initiativeID := range g.InitiativeIDs {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO goal_initiatives (goal_id, initiative_id, ord) VALUES (?, ?, ?)`,
				g.ID, initiativeID, j); err != nil {
				return fmt.Errorf("saving goal initiative link: %w", err)
			}
		}
	}

	for i, init := range doc.Initiatives {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO initiatives (id, goal_id, title, planning_year, start_date, target_due_date, status, ord)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			init.ID, init.GoalID, init.Title, init.PlanningYear,
			init.StartDate, init.TargetDueDate, string(init.Status), i); err != nil {
			return fmt.Errorf("saving initiative %s: %w", init.ID, err)
		}
		for j, alloc := range init.Allocations {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO initiative_allocations (initiative_id, team_id, sde_years, ord) VALUES (?, ?, ?, ?)`,
				init.ID, alloc.TeamID, alloc.SDEYears, j); err != nil {
				return fmt.Errorf("saving allocation for %s: %w", init.ID, err)
			}
		}
		for j, dep := range init.Dependencies {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO initiative_dependencies (initiative_id, depends_on_id, ord) VALUES (?, ?, ?)`,
				init.ID, dep, j); err != nil {
				return fmt.Errorf("saving dependency for %s: %w", init.ID, err)
			}
		}
	}

	for i, wp := range doc.WorkPackages {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO work_packages (id, initiative_id, title, start_date, end_date, status, ord)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			wp.ID, wp.InitiativeID, wp.Title, wp.StartDate, wp.EndDate, string(wp.Status), i); err != nil {
			return fmt.Errorf("saving work package %s: %w", wp.ID, err)
		}
		for j, dep := range wp.Dependencies {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO wp_dependencies (work_package_id, depends_on_id, ord) VALUES (?, ?, ?)`,
				wp.ID, dep, j); err != nil {
				return fmt.Errorf("saving wp dependency for %s: %w", wp.ID, err)
			}
		}
		for j, a := range wp.Assignments {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO wp_assignments (work_package_id, team_id, sde_days, start_date, end_date, ord)
				VALUES (?, ?, ?, ?, ?, ?)`,
				wp.ID, a.TeamID, a.SDEDays, a.StartDate, a.EndDate, j); err != nil {
				return fmt.Errorf("saving assignment for %s: %w", wp.ID, err)
			}
			for k, pred := range a.Predecessors {
				if _, err := tx.ExecContext(ctx,
					`INSERT INTO wp_assignment_predecessors (work_package_id, team_id, predecessor_id, ord)
					VALUES (?, ?, ?, ?)`,
					wp.ID, a.TeamID, pred, k); err != nil {
					return fmt.Errorf("saving predecessor for %s: %w", wp.ID, err)
				}
			}
		}
		for j, p := range wp.Phases {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO delivery_phases (work_package_id, phase_id, name, start_date, end_date, status, ord)
				VALUES (?, ?, ?, ?, ?, ?, ?)`,
				wp.ID, p.ID, p.Name, p.StartDate, p.EndDate, string(p.Status), j); err != nil {
				return fmt.Errorf("saving phase for %s: %w", wp.ID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing save: %w", err)
	}
	committed = true
	return nil
}
