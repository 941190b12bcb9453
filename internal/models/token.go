package models

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenClaims is the payload of a session token.
type TokenClaims struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	User  UserSummary `json:"user"`
	Token string      `json:"token"`
}

// Identity is what a verified session token proves about the caller.
type Identity struct {
	UserID uuid.UUID
	Name   string
}
