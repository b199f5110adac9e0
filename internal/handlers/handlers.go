// Package handlers implements the JSON API routes. Every handler has the
// envelope signature: it receives the authenticated caller and returns an
// error that the envelope maps onto a response.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/diewo77/go-srm/auth"
	"github.com/diewo77/go-srm/httpx"
	"github.com/diewo77/go-srm/internal/audit"
	"github.com/diewo77/go-srm/validation"
	"gorm.io/gorm"
)

// Deps are the collaborators shared by all handlers.
type Deps struct {
	DB        *gorm.DB
	Audit     audit.Recorder
	Validator *validation.Validator
}

var success = map[string]bool{"success": true}

// bind decodes the body into dst and validates it. Malformed JSON and type
// mismatches come back from validation.Decode untouched.
func (d Deps) bind(r *http.Request, dst any) error {
	if err := validation.Decode(r, dst); err != nil {
		return err
	}
	if v := d.Validator.Struct(dst); !v.Empty() {
		return httpx.Invalid(v.Error(), v)
	}
	return nil
}

func (d Deps) record(r *http.Request, caller auth.Identity, action audit.Action, entityType, entityID, details string) {
	d.Audit.Record(r.Context(), audit.Entry{
		ActorID:    caller.ID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Details:    details,
	})
}

// find loads the row with the given id into dst or returns NotFound(entity).
func (d Deps) find(ctx context.Context, dst any, id, entity string) error {
	err := d.DB.WithContext(ctx).First(dst, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httpx.NotFound(entity)
	}
	if err != nil {
		return fmt.Errorf("load %s: %w", entity, err)
	}
	return nil
}

// exists checks for a parent row before a child is written.
func (d Deps) exists(ctx context.Context, model any, id, entity string) error {
	var n int64
	if err := d.DB.WithContext(ctx).Model(model).Where("id = ?", id).Count(&n).Error; err != nil {
		return fmt.Errorf("lookup %s: %w", entity, err)
	}
	if n == 0 {
		return httpx.NotFound(entity)
	}
	return nil
}

// update applies a partial update and reloads dst. An empty change set
// leaves the row untouched.
func (d Deps) update(ctx context.Context, dst any, changes map[string]any) error {
	db := d.DB.WithContext(ctx)
	if len(changes) > 0 {
		if err := db.Model(dst).Updates(changes).Error; err != nil {
			return err
		}
	}
	return db.First(dst).Error
}
