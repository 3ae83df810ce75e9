package domain

type Team struct {
	ID       string
	Name     string
	Identity string // short display handle, preferred over Name when set
}

// DisplayName returns the preferred label for the team.
func (t Team) DisplayName() string {
	return CoalesceStr(t.Identity, t.Name, t.ID)
}
