package model

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// UserClaims are JWT claims for an authenticated respondent
type UserClaims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// User is a stored account
type User struct {
	ID           string    `json:"id" bson:"_id" db:"id"`
	Email        string    `json:"email" bson:"email" db:"email"`
	PasswordHash string    `json:"-" bson:"passwordHash" db:"password_hash"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt" db:"created_at"`
}

// Actor is the caller identity passed explicitly into operations.
// The zero value is an anonymous caller.
type Actor struct {
	UserID string
	Email  string
}

// Authenticated reports whether the actor carries a verified identity
func (a Actor) Authenticated() bool {
	return a.UserID != ""
}

// CredentialsRequest is the request body for sign-up and login
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is returned after successful sign-up or login
type LoginResponse struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
	Email  string `json:"email"`
}
