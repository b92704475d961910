package domain

import "time"

// Role is the coarse-grained permission tier gating catalog operations.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// UserAccount models a registered actor. The password hash is opaque to
// everything except the password hasher.
type UserAccount struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Claims is the decoded payload of a verified token.
type Claims struct {
	Subject   string
	Role      Role
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// AuthContext is the per-request outcome of token verification: either an
// authenticated identity+role pair or anonymous. The auth middleware creates
// it once per request and it is threaded explicitly through every service
// call; no component reads identity from ambient state.
type AuthContext struct {
	Username      string
	Role          Role
	Authenticated bool
}

// Anonymous returns the AuthContext for a request carrying no trusted identity.
func Anonymous() AuthContext {
	return AuthContext{}
}

// Authenticated returns the AuthContext for a verified identity.
func Authenticated(username string, role Role) AuthContext {
	return AuthContext{Username: username, Role: role, Authenticated: true}
}
