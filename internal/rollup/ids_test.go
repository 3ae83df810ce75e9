package rollup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeID(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Checkout Revamp", "checkout-revamp"},
		{"  API / Platform  ", "api-platform"},
		{"wp_123", "wp_123"},
		{"already-normal", "already-normal"},
		{"--weird--", "weird"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeID(tt.in), "input %q", tt.in)
	}
}

func TestAssignmentTaskID(t *testing.T) {
	id, ok := AssignmentTaskID("WP One", "Team A")
	assert.True(t, ok)
	assert.Equal(t, "wp-one-team-a", id)

	_, ok = AssignmentTaskID("wp1", "")
	assert.False(t, ok)
	_, ok = AssignmentTaskID("", "team-a")
	assert.False(t, ok)
}
