package business

// Principal is the identity a business object checks its rules against.
type Principal struct {
	Name  string
	Roles []string
}

// NewPrincipal creates a principal in the given roles.
func NewPrincipal(name string, roles ...string) *Principal {
	return &Principal{Name: name, Roles: roles}
}

// IsInRole reports whether the principal holds role. A nil principal holds no roles.
func (p *Principal) IsInRole(role string) bool {
	if p == nil {
		return false
	}
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}
