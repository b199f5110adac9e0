package policy

import (
	"github.com/diewo77/go-srm/gate"
	"github.com/diewo77/go-srm/internal/models"
)

// Permissions required by the API routes.
var (
	SellerList   = gate.NewPermission("seller", gate.ActionList)
	SellerView   = gate.NewPermission("seller", gate.ActionView)
	SellerCreate = gate.NewPermission("seller", gate.ActionCreate)
	SellerUpdate = gate.NewPermission("seller", gate.ActionUpdate)
	SellerDelete = gate.NewPermission("seller", gate.ActionDelete)

	DocumentList   = gate.NewPermission("document", gate.ActionList)
	DocumentCreate = gate.NewPermission("document", gate.ActionCreate)
	DocumentUpdate = gate.NewPermission("document", gate.ActionUpdate)
	DocumentDelete = gate.NewPermission("document", gate.ActionDelete)

	PaymentList   = gate.NewPermission("payment", gate.ActionList)
	PaymentView   = gate.NewPermission("payment", gate.ActionView)
	PaymentCreate = gate.NewPermission("payment", gate.ActionCreate)
	PaymentUpdate = gate.NewPermission("payment", gate.ActionUpdate)
	PaymentDelete = gate.NewPermission("payment", gate.ActionDelete)

	InvoiceList     = gate.NewPermission("invoice", gate.ActionList)
	InvoiceView     = gate.NewPermission("invoice", gate.ActionView)
	InvoiceCreate   = gate.NewPermission("invoice", gate.ActionCreate)
	InvoiceDownload = gate.NewPermission("invoice", gate.ActionDownload)

	NoteList   = gate.NewPermission("note", gate.ActionList)
	NoteCreate = gate.NewPermission("note", gate.ActionCreate)
	NoteUpdate = gate.NewPermission("note", gate.ActionUpdate)
	NoteDelete = gate.NewPermission("note", gate.ActionDelete)

	ProposalList   = gate.NewPermission("proposal", gate.ActionList)
	ProposalCreate = gate.NewPermission("proposal", gate.ActionCreate)
	ProposalUpdate = gate.NewPermission("proposal", gate.ActionUpdate)
	ProposalDelete = gate.NewPermission("proposal", gate.ActionDelete)

	LifecycleList   = gate.NewPermission("lifecycle", gate.ActionList)
	LifecycleCreate = gate.NewPermission("lifecycle", gate.ActionCreate)

	UserList   = gate.NewPermission("user", gate.ActionList)
	UserCreate = gate.NewPermission("user", gate.ActionCreate)
	UserDelete = gate.NewPermission("user", gate.ActionDelete)

	AccountView     = gate.NewPermission("account", gate.ActionView)
	AccountPassword = gate.NewPermission("account", gate.ActionPassword)

	AuditList   = gate.NewPermission("audit", gate.ActionList)
	AuditExport = gate.NewPermission("audit", gate.ActionExport)
)

// DefaultRoles grants admins everything. Account managers work on seller
// records but cannot delete sellers, manage users or read the audit trail.
func DefaultRoles() *gate.Roles {
	return gate.NewRoles(
		gate.NewStaticProfile(models.RoleAdmin, gate.PermissionSuperAdmin),
		gate.NewStaticProfile(models.RoleAccountManager,
			SellerList, SellerView, SellerCreate, SellerUpdate,
			"document:*",
			"payment:*",
			"invoice:*",
			"note:*",
			"proposal:*",
			"lifecycle:*",
			"account:*",
		),
	)
}
