package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/diewo77/go-srm/auth"
	"github.com/diewo77/go-srm/internal/models"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrAccountNotFound    = errors.New("account not found")
	ErrSelfDelete         = errors.New("cannot delete your own account")
	ErrAdminDelete        = errors.New("cannot delete admin users")
	ErrWrongPassword      = errors.New("current password is incorrect")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// TempPasswordLength is the length of generated first-login passwords.
const TempPasswordLength = 12

// CreatedUser is returned once, right after creation, with the only copy of
// the temporary password.
type CreatedUser struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	TempPassword string `json:"tempPassword"`
}

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// Identity resolves a session subject to the caller identity.
func (s *UserService) Identity(ctx context.Context, id string) (auth.Identity, error) {
	var u models.User
	err := s.db.WithContext(ctx).First(&u, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return auth.Identity{}, ErrUserNotFound
	}
	if err != nil {
		return auth.Identity{}, fmt.Errorf("load user: %w", err)
	}
	return auth.Identity{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}, nil
}

// ListAccountManagers returns every account manager, newest first.
func (s *UserService) ListAccountManagers(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	err := s.db.WithContext(ctx).
		Where("role = ?", models.RoleAccountManager).
		Order("created_at DESC").
		Find(&users).Error
	return users, err
}

// CreateAccountManager creates the user and its credential in one
// transaction; neither row survives if the other fails.
func (s *UserService) CreateAccountManager(ctx context.Context, email, name string) (CreatedUser, error) {
	db := s.db.WithContext(ctx)
	var n int64
	if err := db.Model(&models.User{}).Where("email = ?", email).Count(&n).Error; err != nil {
		return CreatedUser{}, fmt.Errorf("lookup email: %w", err)
	}
	if n > 0 {
		return CreatedUser{}, ErrEmailTaken
	}

	temp, err := auth.GeneratePassword(TempPasswordLength)
	if err != nil {
		return CreatedUser{}, err
	}
	hash, err := auth.HashPassword(temp)
	if err != nil {
		return CreatedUser{}, err
	}

	user := models.User{Email: email, Name: name, Role: models.RoleAccountManager}
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		return tx.Create(&models.Credential{UserID: user.ID, PasswordHash: hash}).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return CreatedUser{}, ErrEmailTaken
	}
	if err != nil {
		return CreatedUser{}, fmt.Errorf("create user: %w", err)
	}
	return CreatedUser{ID: user.ID, Email: user.Email, Name: user.Name, Role: user.Role, TempPassword: temp}, nil
}

// Delete removes targetID on behalf of callerID. Callers cannot delete
// themselves and admins cannot be deleted at all.
func (s *UserService) Delete(ctx context.Context, callerID, targetID string) (models.User, error) {
	if callerID == targetID {
		return models.User{}, ErrSelfDelete
	}
	db := s.db.WithContext(ctx)
	var target models.User
	err := db.First(&target, "id = ?", targetID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return target, ErrUserNotFound
	}
	if err != nil {
		return target, fmt.Errorf("load user: %w", err)
	}
	if target.IsAdmin() {
		return target, ErrAdminDelete
	}
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", target.ID).Delete(&models.Credential{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, "id = ?", target.ID).Error
	})
	if err != nil {
		return target, fmt.Errorf("delete user: %w", err)
	}
	return target, nil
}

// ChangePassword replaces the caller's password after checking the current one.
func (s *UserService) ChangePassword(ctx context.Context, userID, current, next string) error {
	db := s.db.WithContext(ctx)
	var cred models.Credential
	err := db.First(&cred, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrAccountNotFound
	}
	if err != nil {
		return fmt.Errorf("load credential: %w", err)
	}
	if !auth.CheckPassword(cred.PasswordHash, current) {
		return ErrWrongPassword
	}
	hash, err := auth.HashPassword(next)
	if err != nil {
		return err
	}
	return db.Model(&cred).Update("password_hash", hash).Error
}

// Authenticate checks an email/password pair against the credential records.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (models.User, error) {
	db := s.db.WithContext(ctx)
	var u models.User
	err := db.Preload("Credential").First(&u, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return u, ErrInvalidCredentials
	}
	if err != nil {
		return u, fmt.Errorf("load user: %w", err)
	}
	if u.Credential == nil || !auth.CheckPassword(u.Credential.PasswordHash, password) {
		return models.User{}, ErrInvalidCredentials
	}
	return u, nil
}

// EnsureAdmin creates or updates the admin account for email and resets its
// password.
func (s *UserService) EnsureAdmin(ctx context.Context, email, name, password string) (models.User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, err
	}
	var user models.User
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.First(&user, "email = ?", email).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			user = models.User{Email: email, Name: name, Role: models.RoleAdmin}
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			if err := tx.Model(&user).Updates(map[string]any{"name": name, "role": models.RoleAdmin}).Error; err != nil {
				return err
			}
		}
		var cred models.Credential
		err = tx.First(&cred, "user_id = ?", user.ID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(&models.Credential{UserID: user.ID, PasswordHash: hash}).Error
		}
		if err != nil {
			return err
		}
		return tx.Model(&cred).Update("password_hash", hash).Error
	})
	if err != nil {
		return models.User{}, fmt.Errorf("ensure admin: %w", err)
	}
	return user, nil
}
