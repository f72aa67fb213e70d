package models

// AdminUser is the wire shape of a dashboard admin account.
// The password hash never leaves the server.
type AdminUser struct {
	UserID    string `json:"userId"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

const (
	AdminStatusActive    = "active"
	AdminStatusSuspended = "suspended"

	RoleSuperadmin = "superadmin"
	RoleAdmin      = "admin"
	RoleViewer     = "viewer"
)

// LoginResult is the payload inside the login response envelope.
type LoginResult struct {
	Token string    `json:"token"`
	User  AdminUser `json:"user"`
}
