package gate_test

import (
	"errors"
	"testing"

	"github.com/diewo77/go-srm/gate"
)

func TestStaticProfile_HasPermission(t *testing.T) {
	profile := gate.NewStaticProfile("Account Manager",
		gate.NewPermission("seller", gate.ActionCreate),
		gate.NewPermission("note", gate.WildcardAll),
	)

	if !profile.HasPermission(gate.NewPermission("seller", gate.ActionCreate)) {
		t.Error("should have seller:create permission")
	}
	if !profile.HasPermission(gate.NewPermission("note", gate.ActionDelete)) {
		t.Error("note:* should grant note:delete")
	}
	if profile.HasPermission(gate.NewPermission("seller", gate.ActionDelete)) {
		t.Error("should not have seller:delete permission")
	}
}

func TestStaticProfile_PermissionsSortedCopy(t *testing.T) {
	profile := gate.NewStaticProfile("p", "b:view", "a:view")
	perms := profile.Permissions()
	if len(perms) != 2 || perms[0] != "a:view" || perms[1] != "b:view" {
		t.Fatalf("unexpected permissions %v", perms)
	}
	perms[0] = "*:*"
	if profile.HasPermission("user:delete") {
		t.Error("mutating the returned slice must not change the profile")
	}
}

func TestRoles_Allow(t *testing.T) {
	roles := gate.NewRoles(
		gate.NewStaticProfile("Admin", gate.PermissionSuperAdmin),
		gate.NewStaticProfile("Account Manager", "seller:list"),
	)

	if err := roles.Allow("Admin", "audit:list"); err != nil {
		t.Errorf("admin: unexpected error %v", err)
	}
	if err := roles.Allow("Account Manager", "seller:list"); err != nil {
		t.Errorf("manager: unexpected error %v", err)
	}
	if err := roles.Allow("Account Manager", "audit:list"); !errors.Is(err, gate.ErrForbidden) {
		t.Errorf("manager audit: expected ErrForbidden, got %v", err)
	}
	if err := roles.Allow("Guest", "seller:list"); !errors.Is(err, gate.ErrUnknownRole) {
		t.Errorf("guest: expected ErrUnknownRole, got %v", err)
	}
}
