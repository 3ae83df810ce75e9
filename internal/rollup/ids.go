package rollup

import "strings"

// NormalizeID lowercases an identifier and collapses every run of
// characters outside [a-z0-9_-] into a single hyphen. Timeline task ids
// are always normalized so table-side and chart-side ids compare equal.
func NormalizeID(value string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(value)) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '_' || r == '-':
			b.WriteRune(r)
			dash = false
		default:
			if !dash {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}

// AssignmentTaskID builds the composite timeline id for a task row.
// Both parts are required; an unassigned row has no stable task id.
func AssignmentTaskID(wpID, teamID string) (string, bool) {
	if wpID == "" || teamID == "" {
		return "", false
	}
	return NormalizeID(wpID + "-" + teamID), true
}
