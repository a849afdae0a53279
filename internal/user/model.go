package user

import (
	"strings"
	"time"
)

const (
	MessageRegisterSuccess = "Registration successful"
	MessageLoginSuccess    = "Login successful"
)

// User is the persisted row. The password hash never leaves this package:
// responses are built from the projection types below.
type User struct {
	UserId    int64
	Name      string
	Email     string
	Password  string
	IsAdmin   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type PublicUser struct {
	UserId    int64     `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (user *User) Public() *PublicUser {
	return &PublicUser{
		UserId:    user.UserId,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

type LoginUserData struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type LoginResult struct {
	UserData    *LoginUserData `json:"userData"`
	AccessToken string         `json:"accessToken"`
}

type SignupPayload struct {
	Name     string `json:"name" validate:"required,min=2,max=100,nowhitespace"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=5"`
	IsAdmin  bool   `json:"isAdmin"`
}

func (payload *SignupPayload) Normalize() {
	payload.Name = strings.TrimSpace(payload.Name)
	payload.Email = strings.ToLower(strings.TrimSpace(payload.Email))
}

func (payload *SignupPayload) Messages() map[string]string {
	return map[string]string{
		"Name.required":     "Name is required",
		"Name.min":          "Name must be at least 2 characters long",
		"Name.max":          "Name cannot exceed 100 characters",
		"Name.nowhitespace": "Name cannot contain spaces",
		"Email.required":    "Email is required",
		"Email.email":       "Please provide a valid email address",
		"Password.required": "Password is required",
		"Password.min":      "Password must be at least 5 characters long",
	}
}

type LoginPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (payload *LoginPayload) Normalize() {
	payload.Email = strings.ToLower(strings.TrimSpace(payload.Email))
}

func (payload *LoginPayload) Messages() map[string]string {
	return map[string]string{
		"Email.required":    "Email is required",
		"Email.email":       "Please provide a valid email address",
		"Password.required": "Password is required",
	}
}
