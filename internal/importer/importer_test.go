package importer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/horizon/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePlan = `
working_days_per_year: 250
teams:
  - name: Team Alpha
    identity: alpha
  - id: team-b
    name: Team Beta
goals:
  - title: Modern Checkout
    start_date: "2024-01-01"
    target_due_date: "2024-12-01"
initiatives:
  - title: Payments
    goal: Modern Checkout
    planning_year: 2024
    status: Committed
    allocations:
      - team: Team Alpha
        sde_years: 0.5
    work_packages:
      - title: Gateway Integration
        status: In Progress
        assignments:
          - team: Team Alpha
            sde_days: 65.25
            start_date: "2024-01-01"
            end_date: "2024-03-01"
          - team: team-b
            sde_days: 30
            start_date: "2024-02-01"
            end_date: "2024-04-01"
      - title: Reconciliation
        start_date: "2024-04-01"
        end_date: "2024-06-01"
        depends_on:
          - payments-gateway-integration
  - title: Fraud Checks
    planning_year: 2024
    depends_on:
      - Payments
`

func TestParse_FullPlan(t *testing.T) {
	doc, err := Parse([]byte(samplePlan))
	require.NoError(t, err)

	assert.Equal(t, 250, doc.WorkingDaysPerYear())

	require.Len(t, doc.Teams, 2)
	assert.Equal(t, "team-alpha", doc.Teams[0].ID, "team id derived from the name")
	assert.Equal(t, "alpha", doc.Teams[0].Identity)
	assert.Equal(t, "team-b", doc.Teams[1].ID)

	require.Len(t, doc.Goals, 1)
	goal := doc.Goal("modern-checkout")
	require.NotNil(t, goal)
	assert.Equal(t, []string{"payments"}, goal.InitiativeIDs, "goal link derived from the initiative side")

	payments := doc.Initiative("payments")
	require.NotNil(t, payments)
	assert.Equal(t, "modern-checkout", payments.GoalID)
	assert.Equal(t, domain.InitiativeCommitted, payments.Status)
	require.Len(t, payments.Allocations, 1)
	assert.Equal(t, "team-alpha", payments.Allocations[0].TeamID)
	assert.Equal(t, []string{"payments-gateway-integration", "payments-reconciliation"}, payments.WorkPackageIDs)

	fraud := doc.Initiative("fraud-checks")
	require.NotNil(t, fraud)
	assert.Equal(t, domain.InitiativeBacklog, fraud.Status, "status defaults to Backlog")
	assert.Equal(t, []string{"payments"}, fraud.Dependencies)

	gateway := doc.WorkPackage("payments-gateway-integration")
	require.NotNil(t, gateway)
	assert.Equal(t, domain.WorkPackageInProgress, gateway.Status)
	require.Len(t, gateway.Assignments, 2)
	assert.Equal(t, "2024-01-01", gateway.StartDate, "span derived from the assignments")
	assert.Equal(t, "2024-04-01", gateway.EndDate)
	assert.Len(t, gateway.Phases, len(domain.StandardDeliveryPhases))

	recon := doc.WorkPackage("payments-reconciliation")
	require.NotNil(t, recon)
	assert.Equal(t, []string{"payments-gateway-integration"}, recon.Dependencies)
	assert.Equal(t, "2024-04-01", recon.StartDate, "explicit span kept when there are no assigned tasks")
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "duplicate team",
			yaml: "teams:\n  - name: Alpha\n  - id: alpha\n    name: Other\n",
			want: `duplicate team "alpha"`,
		},
		{
			name: "duplicate initiative",
			yaml: "initiatives:\n  - title: Same\n  - title: same\n",
			want: `duplicate initiative "same"`,
		},
		{
			name: "unknown allocation team",
			yaml: "initiatives:\n  - title: X\n    allocations:\n      - team: Ghost\n        sde_years: 1\n",
			want: `unknown team "Ghost"`,
		},
		{
			name: "negative allocation",
			yaml: "teams:\n  - name: Alpha\ninitiatives:\n  - title: X\n    allocations:\n      - team: Alpha\n        sde_years: -0.5\n",
			want: "negative allocation",
		},
		{
			name: "negative assignment effort",
			yaml: "teams:\n  - name: Alpha\ninitiatives:\n  - title: X\n    work_packages:\n      - title: Build\n        assignments:\n          - team: Alpha\n            sde_days: -10\n",
			want: "negative effort",
		},
		{
			name: "unknown initiative status",
			yaml: "initiatives:\n  - title: X\n    status: Done\n",
			want: `unknown status "Done"`,
		},
		{
			name: "unknown work package status",
			yaml: "initiatives:\n  - title: X\n    work_packages:\n      - title: Y\n        status: Started\n",
			want: `unknown status "Started"`,
		},
		{
			name: "unknown goal reference",
			yaml: "initiatives:\n  - title: X\n    goal: Nope\n",
			want: `unknown goal "nope"`,
		},
		{
			name: "unknown initiative dependency",
			yaml: "initiatives:\n  - title: X\n    depends_on:\n      - ghost\n",
			want: `unknown initiative "ghost"`,
		},
		{
			name: "unknown work package dependency",
			yaml: "initiatives:\n  - title: X\n    work_packages:\n      - title: Y\n        depends_on:\n          - ghost\n",
			want: `unknown work package "ghost"`,
		},
		{
			name: "not yaml",
			yaml: "{{nope",
			want: "parsing plan file",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParse_DependencyCycleRejected(t *testing.T) {
	cyclic := `
initiatives:
  - title: X
    work_packages:
      - title: A
        depends_on:
          - x-b
      - title: B
        depends_on:
          - x-a
`
	_, err := Parse([]byte(cyclic))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "forms a cycle")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(samplePlan), 0o644))

	doc, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, doc.Initiatives, 2)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading plan file")
}
