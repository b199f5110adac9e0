// Package audit records one append-only entry per mutating action. Recording
// never fails the caller: storage and sink errors are logged and dropped.
package audit

import (
	"context"
	"time"

	"github.com/diewo77/go-srm/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Action is the application-level vocabulary stored in AuditLog.Action.
type Action string

const (
	CreateSeller    Action = "CREATE_SELLER"
	UpdateSeller    Action = "UPDATE_SELLER"
	DeleteSeller    Action = "DELETE_SELLER"
	UploadDocument  Action = "UPLOAD_DOCUMENT"
	UpdateDocument  Action = "UPDATE_DOCUMENT"
	DeleteDocument  Action = "DELETE_DOCUMENT"
	CreatePayment   Action = "CREATE_PAYMENT"
	UpdatePayment   Action = "UPDATE_PAYMENT"
	DeletePayment   Action = "DELETE_PAYMENT"
	CreateInvoice   Action = "CREATE_INVOICE"
	DownloadInvoice Action = "DOWNLOAD_INVOICE"
	CreateNote      Action = "CREATE_NOTE"
	UpdateNote      Action = "UPDATE_NOTE"
	DeleteNote      Action = "DELETE_NOTE"
	CreateProposal  Action = "CREATE_PROPOSAL"
	UpdateProposal  Action = "UPDATE_PROPOSAL"
	DeleteProposal  Action = "DELETE_PROPOSAL"
	UpdateLifecycle Action = "UPDATE_LIFECYCLE"
	CreateUser      Action = "CREATE_USER"
	DeleteUser      Action = "DELETE_USER"
	ChangePassword  Action = "CHANGE_PASSWORD"
)

// MaxRecent is the most entries Recent will return.
const MaxRecent = 100

// Entry describes one audited action. EntityID and Details are optional.
type Entry struct {
	ActorID    string
	Action     Action
	EntityType string
	EntityID   string
	Details    string
}

// Recorder appends audit entries. Implementations must not block the caller
// on failure and report nothing back.
type Recorder interface {
	Record(ctx context.Context, e Entry)
}

// Sink receives every stored entry, e.g. to feed an external event stream.
type Sink interface {
	Publish(ctx context.Context, log models.AuditLog) error
}

// Log stores entries in the audit_logs table and fans them out to sinks.
type Log struct {
	db      *gorm.DB
	logger  *zap.Logger
	sinks   []Sink
	timeout time.Duration

	// sinkTimeout bounds each Publish so an unreachable sink adds little
	// latency to the request that triggered the entry.
	sinkTimeout time.Duration
}

// NewLog returns a Log writing through db.
func NewLog(db *gorm.DB, logger *zap.Logger, sinks ...Sink) *Log {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Log{db: db, logger: logger, sinks: sinks, timeout: 5 * time.Second, sinkTimeout: 250 * time.Millisecond}
}

// Record stores e after the primary mutation has committed. The request
// context is detached so a client disconnect does not drop the entry.
func (l *Log) Record(ctx context.Context, e Entry) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), l.timeout)
	defer cancel()

	row := models.AuditLog{
		UserID:     e.ActorID,
		Action:     string(e.Action),
		EntityType: e.EntityType,
		EntityID:   optional(e.EntityID),
		Details:    optional(e.Details),
	}
	fields := []zap.Field{
		zap.String("action", row.Action),
		zap.String("entity_type", row.EntityType),
		zap.String("entity_id", e.EntityID),
		zap.String("actor_id", row.UserID),
	}
	if err := l.db.WithContext(ctx).Create(&row).Error; err != nil {
		l.logger.Error("audit write failed", append(fields, zap.Error(err))...)
	}
	for _, s := range l.sinks {
		l.publish(ctx, s, row, fields)
	}
}

func (l *Log) publish(ctx context.Context, s Sink, row models.AuditLog, fields []zap.Field) {
	ctx, cancel := context.WithTimeout(ctx, l.sinkTimeout)
	defer cancel()
	if err := s.Publish(ctx, row); err != nil {
		l.logger.Warn("audit sink publish failed", append(fields, zap.Error(err))...)
	}
}

// Recent returns up to limit entries, newest first. limit is clamped to
// 1..MaxRecent.
func (l *Log) Recent(ctx context.Context, limit int) ([]models.AuditLog, error) {
	if limit <= 0 || limit > MaxRecent {
		limit = MaxRecent
	}
	var logs []models.AuditLog
	err := l.db.WithContext(ctx).
		Order("created_at DESC").Order("id DESC").
		Limit(limit).
		Find(&logs).Error
	return logs, err
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
