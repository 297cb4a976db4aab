package entity

import "strings"

const (
	RoleAdmin      = "ADMIN"
	RoleDirector   = "DIRECTOR"
	RoleEconomist  = "ECONOMIST"
	RoleAccountant = "ACCOUNTANT"
	RoleVisitor    = "VISITOR"
)

// RolePrefix is prepended to roles at the persistence boundary. It is a
// storage artifact only; the rest of the program works with bare role names.
const RolePrefix = "ROLE_"

const (
	UsernameMinLen = 3
	UsernameMaxLen = 20
)

// DbUser represents a persisted user account. Role holds the bare enumeration
// value in memory; the sql repository adds/strips RolePrefix on write/read.
type DbUser struct {
	ID           uint   `gorm:"primarykey" json:"id"`
	Username     string `gorm:"column:username;type:varchar(20);uniqueIndex;not null" json:"username"`
	PasswordHash string `gorm:"column:password;type:varchar(255);not null" json:"-"`
	Role         string `gorm:"column:role;type:varchar(50);not null" json:"role"`
}

// TableName overrides default pluralised name.
func (DbUser) TableName() string {
	return "users"
}

// IsValidRole reports whether role is a member of the role enumeration.
func IsValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleDirector, RoleEconomist, RoleAccountant, RoleVisitor:
		return true
	default:
		return false
	}
}

// PrefixRole applies the persistence prefix to a bare role name.
func PrefixRole(role string) string {
	if role == "" || strings.HasPrefix(role, RolePrefix) {
		return role
	}
	return RolePrefix + role
}

// StripRolePrefix removes the persistence prefix from a stored role value.
func StripRolePrefix(role string) string {
	return strings.TrimPrefix(role, RolePrefix)
}

// LoginRequest is the form payload for the login page.
type LoginRequest struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// RegisterRequest is the form payload for public registration. The shape
// constraints live on the binding so malformed input is rejected before it
// reaches the service.
type RegisterRequest struct {
	Username string `form:"username" binding:"required,min=3,max=20"`
	Password string `form:"password" binding:"required"`
}
