package gate

import "fmt"

// Roles maps role names to the profile granted to that role.
// It is built once at startup and only read afterwards.
type Roles struct {
	profiles map[string]Profile
}

// NewRoles registers each profile under its Name.
func NewRoles(profiles ...Profile) *Roles {
	r := &Roles{profiles: make(map[string]Profile, len(profiles))}
	for _, p := range profiles {
		r.profiles[p.Name()] = p
	}
	return r
}

// Profile returns the profile registered for role.
func (r *Roles) Profile(role string) (Profile, error) {
	p, ok := r.profiles[role]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}
	return p, nil
}

// Allow returns nil when role grants perm, ErrForbidden when it does not and
// ErrUnknownRole when the role has no profile at all.
func (r *Roles) Allow(role string, perm Permission) error {
	p, err := r.Profile(role)
	if err != nil {
		return err
	}
	if !p.HasPermission(perm) {
		return ErrForbidden
	}
	return nil
}
