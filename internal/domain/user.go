package domain

import (
	"context"
	"errors"
)

// ErrUserNotFound distinguishes an unknown username from a storage failure.
var ErrUserNotFound = errors.New("user not found")

// ErrUserExists is returned when registering a username that is already taken.
var ErrUserExists = errors.New("user already exists")

// User is one registered tracker user. PasswordHash is a bcrypt string and is
// never serialized.
type User struct {
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}

// LoginResult is returned on a successful login or first-time registration.
type LoginResult struct {
	Token      string `json:"token"`
	Username   string `json:"username"`
	Registered bool   `json:"registered"`
}

// UserRepository defines data access for the credential file
type UserRepository interface {
	// GetByUsername returns ErrUserNotFound when the username is unknown.
	GetByUsername(ctx context.Context, username string) (*User, error)
	// Create appends a new credential record; ErrUserExists on duplicates.
	Create(ctx context.Context, user *User) error
	// CredentialFile is the credential file name inside the data directory.
	CredentialFile() string
}

// AuthUsecase defines the login flow: an unknown username is registered on its
// first attempt, a known one is verified against the stored hash.
type AuthUsecase interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
}
