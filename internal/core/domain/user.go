package domain

import (
	"errors"
	"time"
)

const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

var ErrInvalidToken = errors.New("invalid token")
var ErrTokenExpired = errors.New("token expired")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")

// User models a registered actor. Email is the natural key; Role is the
// single source of truth for authorization and is re-read from the
// directory on every role-gated request.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// Claims is the data extracted from a verified session token. The token
// deliberately carries no role claim: authorization always re-resolves the
// role from the directory.
type Claims struct {
	Email string
}
