package model

// User represents an account managed by the auth service
type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"` // Never exposed in JSON responses
	RoleID       int    `json:"role_id"`
}

// Role is a flat lookup referenced by users
type Role struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// CreateUserRequest is used for creating a new user.
// Pointers distinguish a missing field from a zero value.
type CreateUserRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	RoleID   *int    `json:"role_id"`
}

// UpdateUserRequest replaces username, email and role; password is optional
type UpdateUserRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password,omitempty"`
	RoleID   *int    `json:"role_id"`
}

type RoleRequest struct {
	Name *string `json:"name"`
}

type LoginRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
}
