package models

import "time"

// AdminRole represents the role claim carried in an admin session
type AdminRole string

const (
	AdminRoleOwner  AdminRole = "owner"
	AdminRoleEditor AdminRole = "editor"
)

// IsValid reports whether r is a known admin role
func (r AdminRole) IsValid() bool {
	return r == AdminRoleOwner || r == AdminRoleEditor
}

// AdminUser represents an admin back-office account
type AdminUser struct {
	UUID         string    `json:"uuid"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         AdminRole `json:"role"`
	PasswordHash string    `json:"-"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
}

// AdminSession is the authenticated session stored in request context
type AdminSession struct {
	AdminUUID string    `json:"adminUuid"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      AdminRole `json:"role"`
	ExpiresAt int64     `json:"expiresAt"`
	IssuedAt  int64     `json:"issuedAt"`
}

// AdminLoginRequest is the login payload
type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AdminLoginResponse is returned after a successful login
type AdminLoginResponse struct {
	Success bool          `json:"success"`
	Admin   *AdminSession `json:"admin,omitempty"`
	Error   string        `json:"error,omitempty"`
}
