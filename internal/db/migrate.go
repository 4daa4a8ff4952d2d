package db

import (
	"citizen_registry/internal/domain" // Importing domain models
	"context"                          // For the seeding deadline
	"fmt"                              // For error wrapping

	"github.com/sirupsen/logrus" // Logrus for structured logging
	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/gorm"               // GORM ORM library
	"gorm.io/gorm/clause"        // For ON CONFLICT clauses
)

// Default administrator seeded at bootstrap
const (
	AdminUsername = "admin"
	AdminFullName = "System Administrator"
	AdminEmail    = "admin@nimc.gov.ng"
)

// Migrate creates the users and citizens tables, with their unique indexes, if absent
func Migrate(gdb *gorm.DB) error {
	// AutoMigrate will create tables, missing constraints, columns and indexes
	if err := gdb.AutoMigrate(&domain.User{}, &domain.Citizen{}); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	logrus.Info("Migration completed.") // Log successful migration
	return nil
}

// SeedAccount describes a staff account created at bootstrap
type SeedAccount struct {
	Username string
	Password string
	Role     string
	FullName string
	Email    *string
}

// SeedUser inserts account unless its username already exists, and reports whether a row was created
func SeedUser(ctx context.Context, gdb *gorm.DB, account SeedAccount) (bool, error) {
	if !domain.IsValidRole(account.Role) {
		return false, fmt.Errorf("seed user %q: %w: %q", account.Username, domain.ErrInvalidRole, account.Role)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(account.Password), bcrypt.DefaultCost) // Hash the seed password
	if err != nil {
		return false, fmt.Errorf("hash password for %q: %w", account.Username, err)
	}
	user := domain.User{
		Username:     account.Username,
		PasswordHash: string(hash),
		Role:         account.Role,
		FullName:     account.FullName,
		Email:        account.Email,
	}
	// INSERT ... ON CONFLICT DO NOTHING keeps repeated startups idempotent
	res := gdb.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&user)
	if res.Error != nil {
		return false, fmt.Errorf("seed user %q: %w", account.Username, res.Error)
	}
	return res.RowsAffected > 0, nil
}

// SeedAdmin inserts the default administrator. It is a no-op when the username already exists.
func SeedAdmin(ctx context.Context, gdb *gorm.DB, password string) error {
	email := AdminEmail
	created, err := SeedUser(ctx, gdb, SeedAccount{
		Username: AdminUsername,
		Password: password,
		Role:     domain.RoleAdmin,
		FullName: AdminFullName,
		Email:    &email,
	})
	if err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"username": AdminUsername, // Seeded username
		"created":  created,       // False when the account already existed
	}).Info("Admin account ensured")
	return nil
}

// Bootstrap runs schema creation followed by admin seeding
func Bootstrap(ctx context.Context, gdb *gorm.DB, adminPassword string) error {
	if err := Migrate(gdb); err != nil {
		return err
	}
	return SeedAdmin(ctx, gdb, adminPassword)
}
