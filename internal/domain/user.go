package domain

import (
	"errors"
	"time"
)

// Staff roles
const (
	RoleAdmin   = "admin"
	RoleOfficer = "officer"
)

// ErrInvalidRole is returned for a role outside the staff role set
var ErrInvalidRole = errors.New("unrecognized staff role")

// User Model
type User struct {
	ID           uint      `gorm:"primaryKey"`                                                                        // Primary key
	Username     string    `gorm:"type:varchar(50);uniqueIndex;not null"`                                             // Unique username
	PasswordHash string    `gorm:"column:password_hash;type:varchar(255);not null"`                                   // Bcrypt digest, never the plaintext
	Role         string    `gorm:"type:varchar(20);default:officer;check:chk_users_role,role IN ('admin','officer')"` // Role: admin or officer
	FullName     string    `gorm:"type:varchar(100);not null"`                                                        // Display name
	Email        *string   `gorm:"type:varchar(150);uniqueIndex"`                                                     // Optional, unique if present
	CreatedAt    time.Time // Creation timestamp
}

// IsValidRole reports whether role belongs to the closed set of staff roles
func IsValidRole(role string) bool {
	return role == RoleAdmin || role == RoleOfficer
}
