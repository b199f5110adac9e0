package db

import (
	"context"
	"errors"

	"github.com/diewo77/go-srm/internal/models"
	"github.com/diewo77/go-srm/internal/schema"
	"github.com/diewo77/go-srm/internal/services"
	"gorm.io/gorm"
)

var ErrSeedPassword = errors.New("admin password is required")

// SeedAdmin creates the admin account or resets its name, role and
// password. Running it twice leaves a single admin row.
func SeedAdmin(ctx context.Context, db *gorm.DB, email, name, password string) (models.User, error) {
	if password == "" {
		return models.User{}, ErrSeedPassword
	}
	return services.NewUserService(db).EnsureAdmin(ctx, schema.NormalizeEmail(email), name, password)
}
