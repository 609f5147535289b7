package models

import "time"

// User represents a registered account.
// PasswordHash is never serialized to clients.
type User struct {
	// UserID is the UUID assigned at registration. It becomes the token subject.
	UserID string `json:"id"`

	// Email is the unique login of the account.
	Email string `json:"email"`

	// Name is the sanitized display name.
	Name string `json:"name"`

	// Phone is an optional contact number.
	Phone string `json:"phone,omitempty"`

	// PasswordHash holds the bcrypt hash of the account password.
	PasswordHash string `json:"-"`

	// Role is one of RoleUser, RoleRider, RoleDriver or RoleAdmin.
	Role string `json:"role"`

	// CreatedAt is the registration time.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Identity returns the token identity of the account.
func (u User) Identity() Identity {
	return Identity{SubjectID: u.UserID, Email: u.Email, Role: u.Role}
}

// RegisterRequest is the payload of POST /api/auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Phone    string `json:"phone,omitempty"`
	Role     string `json:"role,omitempty"`
}

// Credentials is the payload of POST /api/auth/login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResult is returned by register and login: a freshly issued bearer
// token together with the account it was issued for.
type AuthResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
