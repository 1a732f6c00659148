package model

import "time"

// Role values gate access to management screens.
const (
	RoleAdministrator = "administrator"
	RoleCashier       = "cashier"
)

// User stores system users with role-based access. Salt and PasswordHash are
// hex-encoded PBKDF2-SHA256 material (see internal/auth).
type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"uniqueIndex;not null"`
	Salt         string `gorm:"not null"`
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"type:varchar(20);not null;default:'cashier'"`
	CreatedAt    time.Time
}
