package policy

import (
	"net/http"

	"github.com/diewo77/go-srm/auth"
	"github.com/diewo77/go-srm/internal/audit"
	"github.com/diewo77/go-srm/internal/handlers"
	"github.com/diewo77/go-srm/internal/services"
	"github.com/diewo77/go-srm/pdf"
	"github.com/diewo77/go-srm/validation"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RouterConfig holds the envelope and every configured handler.
type RouterConfig struct {
	Envelope *Envelope

	AuthHandler      *handlers.AuthHandler
	SellerHandler    *handlers.SellerHandler
	DocumentHandler  *handlers.DocumentHandler
	PaymentHandler   *handlers.PaymentHandler
	InvoiceHandler   *handlers.InvoiceHandler
	NoteHandler      *handlers.NoteHandler
	ProposalHandler  *handlers.ProposalHandler
	LifecycleHandler *handlers.LifecycleHandler
	UserHandler      *handlers.UserHandler
	AuditLogHandler  *handlers.AuditLogHandler

	Users    *services.UserService
	Invoices *services.InvoiceService
}

// NewRouterConfig wires handlers, services and the authorization envelope
// around db. Audit entries are written through auditLog.
func NewRouterConfig(db *gorm.DB, auditLog *audit.Log, sessions *auth.Sessions, company pdf.Company, logger *zap.Logger) *RouterConfig {
	users := services.NewUserService(db)
	invoices := services.NewInvoiceService(db, company)
	deps := handlers.Deps{DB: db, Audit: auditLog, Validator: validation.New()}

	return &RouterConfig{
		Envelope: NewEnvelope(sessions, users, DefaultRoles(), logger),

		AuthHandler:      handlers.NewAuthHandler(deps, users, sessions),
		SellerHandler:    handlers.NewSellerHandler(deps),
		DocumentHandler:  handlers.NewDocumentHandler(deps),
		PaymentHandler:   handlers.NewPaymentHandler(deps),
		InvoiceHandler:   handlers.NewInvoiceHandler(deps, invoices),
		NoteHandler:      handlers.NewNoteHandler(deps),
		ProposalHandler:  handlers.NewProposalHandler(deps),
		LifecycleHandler: handlers.NewLifecycleHandler(deps),
		UserHandler:      handlers.NewUserHandler(deps, users),
		AuditLogHandler:  handlers.NewAuditLogHandler(auditLog),

		Users:    users,
		Invoices: invoices,
	}
}

// Register mounts every API route on mux with its required permission.
func (c *RouterConfig) Register(mux *http.ServeMux) {
	e := c.Envelope

	ah := c.AuthHandler
	mux.Handle("POST /auth/login", e.Public(ah.Login))
	mux.Handle("POST /auth/logout", e.Public(ah.Logout))
	mux.Handle("GET /auth/me", e.Handle(AccountView, ah.Me))

	sh := c.SellerHandler
	mux.Handle("GET /sellers", e.Handle(SellerList, sh.List))
	mux.Handle("POST /sellers", e.Handle(SellerCreate, sh.Create))
	mux.Handle("GET /sellers/{id}", e.Handle(SellerView, sh.Get))
	mux.Handle("PUT /sellers/{id}", e.Handle(SellerUpdate, sh.Update))
	mux.Handle("DELETE /sellers/{id}", e.Handle(SellerDelete, sh.Delete))

	dh := c.DocumentHandler
	mux.Handle("GET /sellers/{id}/documents", e.Handle(DocumentList, dh.List))
	mux.Handle("POST /sellers/{id}/documents", e.Handle(DocumentCreate, dh.Create))
	mux.Handle("PUT /documents/{id}", e.Handle(DocumentUpdate, dh.Update))
	mux.Handle("DELETE /documents/{id}", e.Handle(DocumentDelete, dh.Delete))

	ph := c.PaymentHandler
	mux.Handle("GET /sellers/{id}/payments", e.Handle(PaymentList, ph.List))
	mux.Handle("POST /sellers/{id}/payments", e.Handle(PaymentCreate, ph.Create))
	mux.Handle("GET /payments/{id}", e.Handle(PaymentView, ph.Get))
	mux.Handle("PUT /payments/{id}", e.Handle(PaymentUpdate, ph.Update))
	mux.Handle("DELETE /payments/{id}", e.Handle(PaymentDelete, ph.Delete))

	ih := c.InvoiceHandler
	mux.Handle("GET /payments/{id}/invoices", e.Handle(InvoiceList, ih.List))
	mux.Handle("POST /payments/{id}/invoices", e.Handle(InvoiceCreate, ih.Create))
	mux.Handle("GET /invoices/{id}", e.Handle(InvoiceView, ih.Get))
	mux.Handle("GET /invoices/{id}/download", e.Handle(InvoiceDownload, ih.Download))

	nh := c.NoteHandler
	mux.Handle("GET /sellers/{id}/notes", e.Handle(NoteList, nh.List))
	mux.Handle("POST /sellers/{id}/notes", e.Handle(NoteCreate, nh.Create))
	mux.Handle("PUT /notes/{id}", e.Handle(NoteUpdate, nh.Update))
	mux.Handle("DELETE /notes/{id}", e.Handle(NoteDelete, nh.Delete))

	prh := c.ProposalHandler
	mux.Handle("GET /sellers/{id}/proposals", e.Handle(ProposalList, prh.List))
	mux.Handle("POST /sellers/{id}/proposals", e.Handle(ProposalCreate, prh.Create))
	mux.Handle("PUT /proposals/{id}", e.Handle(ProposalUpdate, prh.Update))
	mux.Handle("DELETE /proposals/{id}", e.Handle(ProposalDelete, prh.Delete))

	lh := c.LifecycleHandler
	mux.Handle("GET /sellers/{id}/lifecycle", e.Handle(LifecycleList, lh.List))
	mux.Handle("GET /sellers/{id}/lifecycle/current", e.Handle(LifecycleList, lh.Current))
	mux.Handle("POST /sellers/{id}/lifecycle", e.Handle(LifecycleCreate, lh.Append))

	uh := c.UserHandler
	mux.Handle("GET /users", e.Handle(UserList, uh.List))
	mux.Handle("POST /users", e.Handle(UserCreate, uh.Create))
	mux.Handle("DELETE /users/{id}", e.Handle(UserDelete, uh.Delete))
	mux.Handle("POST /users/change-password", e.Handle(AccountPassword, uh.ChangePassword))

	alh := c.AuditLogHandler
	mux.Handle("GET /audit-logs", e.Handle(AuditList, alh.List))
	mux.Handle("GET /audit-logs/export", e.Handle(AuditExport, alh.Export))
}
