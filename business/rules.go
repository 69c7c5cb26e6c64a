package business

import "sync"

// roleRule permits a principal holding an allowed role and no denied role.
// With no allowed roles everyone not denied is permitted.
type roleRule struct {
	allow []string
	deny  []string
}

func (r *roleRule) permits(p *Principal) bool {
	if r == nil {
		return true
	}
	for _, role := range r.deny {
		if p.IsInRole(role) {
			return false
		}
	}
	if len(r.allow) == 0 {
		return true
	}
	for _, role := range r.allow {
		if p.IsInRole(role) {
			return true
		}
	}
	return false
}

// AuthorizationRules are the per-property and per-object rules of a business type.
type AuthorizationRules struct {
	mu     sync.RWMutex
	read   map[string]*roleRule
	write  map[string]*roleRule
	create roleRule
	edit   roleRule
	delete roleRule
}

func NewAuthorizationRules() *AuthorizationRules {
	return &AuthorizationRules{
		read:  make(map[string]*roleRule),
		write: make(map[string]*roleRule),
	}
}

func (a *AuthorizationRules) rule(m map[string]*roleRule, property string) *roleRule {
	r, ok := m[property]
	if !ok {
		r = &roleRule{}
		m[property] = r
	}
	return r
}

func (a *AuthorizationRules) AllowRead(property string, roles ...string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	r := a.rule(a.read, property)
	r.allow = append(r.allow, roles...)
}

func (a *AuthorizationRules) DenyRead(property string, roles ...string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	r := a.rule(a.read, property)
	r.deny = append(r.deny, roles...)
}

func (a *AuthorizationRules) AllowWrite(property string, roles ...string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	r := a.rule(a.write, property)
	r.allow = append(r.allow, roles...)
}

func (a *AuthorizationRules) DenyWrite(property string, roles ...string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	r := a.rule(a.write, property)
	r.deny = append(r.deny, roles...)
}

func (a *AuthorizationRules) CanRead(p *Principal, property string) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.read[property].permits(p)
}

func (a *AuthorizationRules) CanWrite(p *Principal, property string) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.write[property].permits(p)
}

func (a *AuthorizationRules) AllowCreate(roles ...string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.create.allow = append(a.create.allow, roles...)
}

func (a *AuthorizationRules) AllowEdit(roles ...string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.edit.allow = append(a.edit.allow, roles...)
}

func (a *AuthorizationRules) AllowDelete(roles ...string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.delete.allow = append(a.delete.allow, roles...)
}

func (a *AuthorizationRules) CanCreate(p *Principal) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.create.permits(p)
}

func (a *AuthorizationRules) CanEdit(p *Principal) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.edit.permits(p)
}

func (a *AuthorizationRules) CanDelete(p *Principal) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.delete.permits(p)
}
