package handlers

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/diewo77/go-srm/auth"
	"github.com/diewo77/go-srm/httpx"
	"github.com/diewo77/go-srm/internal/audit"
	"github.com/diewo77/go-srm/internal/models"
	"github.com/diewo77/go-srm/validation"
)

// AuditLogReader is the read side of the audit trail.
type AuditLogReader interface {
	Recent(ctx context.Context, limit int) ([]models.AuditLog, error)
}

type AuditLogHandler struct {
	logs AuditLogReader
}

func NewAuditLogHandler(logs AuditLogReader) *AuditLogHandler {
	return &AuditLogHandler{logs: logs}
}

func (h *AuditLogHandler) recent(r *http.Request) ([]models.AuditLog, error) {
	limit := audit.MaxRecent
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return nil, httpx.Invalid("limit: must be a positive integer", validation.Violations{"limit": "must be a positive integer"})
		}
		limit = n
	}
	return h.logs.Recent(r.Context(), limit)
}

// List returns at most audit.MaxRecent entries, newest first.
func (h *AuditLogHandler) List(w http.ResponseWriter, r *http.Request, _ auth.Identity) error {
	logs, err := h.recent(r)
	if err != nil {
		return err
	}
	httpx.JSON(w, http.StatusOK, logs)
	return nil
}

// Export serves the same rows as List as an xlsx workbook.
func (h *AuditLogHandler) Export(w http.ResponseWriter, r *http.Request, _ auth.Identity) error {
	logs, err := h.recent(r)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := audit.WriteXLSX(&buf, logs); err != nil {
		return err
	}
	name := fmt.Sprintf("audit-log-%s.xlsx", time.Now().UTC().Format("20060102"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
	return nil
}
