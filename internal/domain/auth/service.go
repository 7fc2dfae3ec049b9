package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/Esraa00Tarek/SuperStore-sub000/internal/domain/profile"
	fb "github.com/Esraa00Tarek/SuperStore-sub000/internal/firebase"
)

const (
	sessionTTL = time.Hour
	durableTTL = 14 * 24 * time.Hour
	adminClaim = "admin"
)

// IdentityProvider is the password-verification surface of the Identity
// Toolkit client, narrowed for testability.
type IdentityProvider interface {
	VerifyPassword(ctx context.Context, email, password string) (*fb.PasswordTokens, error)
	SendPasswordReset(ctx context.Context, email string) error
}

// EmailResolver resolves a login username to an account email.
type EmailResolver interface {
	EmailForUsername(ctx context.Context, username string) (string, error)
}

// CookieMinter mints Firebase session cookies; *auth.Client satisfies it.
type CookieMinter interface {
	SessionCookie(ctx context.Context, idToken string, expiresIn time.Duration) (string, error)
	VerifyIDToken(ctx context.Context, idToken string) (*fbauth.Token, error)
}

type Service struct {
	idp      IdentityProvider
	users    EmailResolver
	cookies  CookieMinter
	validate *validator.Validate
	log      *logrus.Entry
}

func NewService(idp IdentityProvider, users EmailResolver, cookies CookieMinter) *Service {
	return &Service{
		idp:      idp,
		users:    users,
		cookies:  cookies,
		validate: validator.New(),
		log:      logrus.WithField("context", "auth"),
	}
}

// Login signs in with an email or username identifier. Remember-me selects a
// durable session cookie over a browser-session one.
func (s *Service) Login(ctx context.Context, in LoginInput) (*Session, error) {
	in.Trim()
	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadRequest, err)
	}

	if s.idp == nil {
		return nil, fmt.Errorf("%w: password login is not configured", ErrBadRequest)
	}

	email, err := s.ResolveEmail(ctx, in.Identifier)
	if err != nil {
		return nil, err
	}

	toks, err := s.idp.VerifyPassword(ctx, email, in.Password)
	if err != nil {
		return nil, normalizeIdentityError(err)
	}

	ttl := sessionTTL
	if in.RememberMe {
		ttl = durableTTL
	}

	sess := &Session{
		UID:          toks.UID,
		Email:        email,
		IDToken:      toks.IDToken,
		RefreshToken: toks.RefreshToken,
		ExpiresAt:    time.Now().UTC().Add(ttl),
	}

	if s.cookies != nil {
		cookie, err := s.cookies.SessionCookie(ctx, toks.IDToken, ttl)
		if err != nil {
			// a failed cookie mint degrades to token-only auth
			s.log.WithError(err).Warn("session cookie mint failed")
		} else {
			sess.SessionCookie = cookie
		}
		if tok, err := s.cookies.VerifyIDToken(ctx, toks.IDToken); err != nil {
			// admin stays false; surface the verifier problem instead of hiding it
			s.log.WithError(err).Warn("id token verification failed")
		} else {
			sess.Admin = IsAdmin(tok.Claims)
		}
	}

	s.log.WithFields(logrus.Fields{"uid": sess.UID, "remember": in.RememberMe}).Info("login ok")
	return sess, nil
}

// ResetPassword dispatches a password-reset email to the account behind the
// identifier, resolving usernames the same way Login does.
func (s *Service) ResetPassword(ctx context.Context, in ResetPasswordInput) error {
	in.Trim()
	if err := s.validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %v", ErrBadRequest, err)
	}

	if s.idp == nil {
		return fmt.Errorf("%w: password login is not configured", ErrBadRequest)
	}

	email, err := s.ResolveEmail(ctx, in.Identifier)
	if err != nil {
		return err
	}
	if err := s.idp.SendPasswordReset(ctx, email); err != nil {
		return normalizeIdentityError(err)
	}
	s.log.WithField("email", email).Info("password reset dispatched")
	return nil
}

// ResolveEmail treats identifiers containing @ as emails; anything else is a
// username looked up in the users collection.
func (s *Service) ResolveEmail(ctx context.Context, identifier string) (string, error) {
	if strings.Contains(identifier, "@") {
		return identifier, nil
	}
	email, err := s.users.EmailForUsername(ctx, identifier)
	if profile.IsErrNotFound(err) {
		return "", fmt.Errorf("%w: %s", ErrUsernameNotFound, identifier)
	}
	if err != nil {
		return "", err
	}
	return email, nil
}

// IsAdmin inspects the admin custom claim on a verified token's claims.
// The store's own access rules must enforce the same check independently.
func IsAdmin(claims map[string]any) bool {
	if claims == nil {
		return false
	}
	if admin, ok := claims[adminClaim].(bool); ok && admin {
		return true
	}
	if role, ok := claims["role"].(string); ok && role == "admin" {
		return true
	}
	return false
}

// normalizeIdentityError folds the provider's error codes into the package
// sentinels so callers and the HTTP layer handle failures uniformly.
func normalizeIdentityError(err error) error {
	code := fb.ErrorCode(err)
	switch {
	case strings.Contains(code, "EMAIL_NOT_FOUND"), strings.Contains(code, "USER_NOT_FOUND"):
		return fmt.Errorf("%w: %s", ErrUserNotFound, code)
	case strings.Contains(code, "INVALID_PASSWORD"), strings.Contains(code, "INVALID_LOGIN_CREDENTIALS"):
		return fmt.Errorf("%w: %s", ErrInvalidCredentials, code)
	case strings.Contains(code, "TOO_MANY_ATTEMPTS"):
		return fmt.Errorf("%w: %s", ErrTooManyRequests, code)
	case strings.Contains(code, "INVALID_EMAIL"):
		return fmt.Errorf("%w: %s", ErrInvalidEmail, code)
	}
	return err
}
