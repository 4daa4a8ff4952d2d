package store

import (
	"context"
	"fmt"
	"time"

	"citizen_registry/internal/domain"

	"gorm.io/gorm"
)

// UserStore is the credential store backed by the users table
type UserStore struct {
	db      *gorm.DB
	timeout time.Duration
}

// NewUserStore creates a user store whose operations are bounded by timeout
func NewUserStore(db *gorm.DB, timeout time.Duration) *UserStore {
	return &UserStore{db: db, timeout: timeout}
}

// FindByUsername returns the user with exactly this username
func (s *UserStore) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var user domain.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, fmt.Errorf("find user by username: %w", classify(err))
	}
	return &user, nil
}
