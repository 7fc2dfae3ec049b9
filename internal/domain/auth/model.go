package auth

import (
	"strings"
	"time"
)

type LoginInput struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required,min=6"`
	RememberMe bool   `json:"rememberMe"`
}

func (in *LoginInput) Trim() {
	in.Identifier = strings.TrimSpace(in.Identifier)
}

type ResetPasswordInput struct {
	Identifier string `json:"identifier" validate:"required"`
}

func (in *ResetPasswordInput) Trim() {
	in.Identifier = strings.TrimSpace(in.Identifier)
}

// Session is the result of a successful login. SessionCookie is durable when
// the login asked to be remembered, otherwise short-lived.
type Session struct {
	UID           string    `json:"uid"`
	Email         string    `json:"email"`
	IDToken       string    `json:"idToken"`
	RefreshToken  string    `json:"refreshToken"`
	SessionCookie string    `json:"sessionCookie,omitempty"`
	ExpiresAt     time.Time `json:"expiresAt"`
	Admin         bool      `json:"admin"`
}
