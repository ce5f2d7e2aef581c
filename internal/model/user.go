package model

import "github.com/golang-jwt/jwt/v5"

type User struct {
	ID      string `json:"_id"`
	Name    string `json:"name"`
	Surname string `json:"surname,omitempty"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// UserCredentials is the stored user row used by login.
type UserCredentials struct {
	ID           string `db:"id"`
	Name         string `db:"name"`
	Surname      string `db:"surname"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`
	IsAdmin      bool   `db:"is_admin"`
}

type SessionClaims struct {
	jwt.RegisteredClaims

	Email   string `json:"email,omitempty"`
	IsAdmin bool   `json:"isAdmin,omitempty"`
}
