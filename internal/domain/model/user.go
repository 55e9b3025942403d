package model

import "time"

// Role grants access to role-gated areas of the marketplace.
type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
	RoleAdmin  Role = "admin"
)

// User represents a registered marketplace account.
type User struct {
	ID           int64
	Email        string
	Name         string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}
