package gate

import "sort"

// Profile is a named set of permissions, typically one per role.
type Profile interface {
	Name() string
	HasPermission(permission Permission) bool
	Permissions() []Permission
}

// StaticProfile is an immutable in-memory profile.
type StaticProfile struct {
	name        string
	permissions []Permission
}

// NewStaticProfile creates a profile with the given permissions.
func NewStaticProfile(name string, permissions ...Permission) *StaticProfile {
	perms := make([]Permission, len(permissions))
	copy(perms, permissions)
	return &StaticProfile{name: name, permissions: perms}
}

func (p *StaticProfile) Name() string { return p.name }

// Permissions returns the profile permissions sorted lexically.
func (p *StaticProfile) Permissions() []Permission {
	perms := make([]Permission, len(p.permissions))
	copy(perms, p.permissions)
	sort.Slice(perms, func(i, j int) bool { return perms[i] < perms[j] })
	return perms
}

// HasPermission checks the requested permission against every granted one,
// honouring wildcards.
func (p *StaticProfile) HasPermission(requested Permission) bool {
	for _, perm := range p.permissions {
		if perm.Matches(requested) {
			return true
		}
	}
	return false
}
