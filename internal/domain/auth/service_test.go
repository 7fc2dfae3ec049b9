package auth

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"

	"github.com/Esraa00Tarek/SuperStore-sub000/internal/domain/profile"
	fb "github.com/Esraa00Tarek/SuperStore-sub000/internal/firebase"
)

type fakeIdentity struct {
	verifyErr error
	resetErr  error
	lastEmail string
}

func (f *fakeIdentity) VerifyPassword(_ context.Context, email, _ string) (*fb.PasswordTokens, error) {
	f.lastEmail = email
	if f.verifyErr != nil {
		return nil, f.verifyErr
	}
	return &fb.PasswordTokens{UID: "uid-1", IDToken: "idtok", RefreshToken: "rtok", ExpiresIn: 3600}, nil
}

func (f *fakeIdentity) SendPasswordReset(_ context.Context, email string) error {
	f.lastEmail = email
	return f.resetErr
}

type fakeUsers struct {
	emails map[string]string
}

func (f *fakeUsers) EmailForUsername(_ context.Context, username string) (string, error) {
	if e, ok := f.emails[username]; ok {
		return e, nil
	}
	return "", fmt.Errorf("%w: username %q", profile.ErrNotFound, username)
}

type fakeCookies struct {
	cookieErr error
	verifyErr error
	claims    map[string]any
}

func (f *fakeCookies) SessionCookie(_ context.Context, _ string, _ time.Duration) (string, error) {
	if f.cookieErr != nil {
		return "", f.cookieErr
	}
	return "cookie-1", nil
}

func (f *fakeCookies) VerifyIDToken(_ context.Context, _ string) (*fbauth.Token, error) {
	if f.verifyErr != nil {
		return nil, f.verifyErr
	}
	return &fbauth.Token{Claims: f.claims}, nil
}

func newTestService(idp *fakeIdentity) *Service {
	return NewService(idp, &fakeUsers{emails: map[string]string{"esraa": "esraa@example.com"}}, nil)
}

func TestLoginWithEmail(t *testing.T) {
	idp := &fakeIdentity{}
	s := newTestService(idp)

	sess, err := s.Login(context.Background(), LoginInput{Identifier: "esraa@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "uid-1", sess.UID)
	assert.Equal(t, "esraa@example.com", sess.Email)
	assert.Equal(t, "idtok", sess.IDToken)
	assert.Equal(t, "esraa@example.com", idp.lastEmail)
}

func TestLoginResolvesUsername(t *testing.T) {
	idp := &fakeIdentity{}
	s := newTestService(idp)

	sess, err := s.Login(context.Background(), LoginInput{Identifier: "esraa", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "esraa@example.com", sess.Email)
}

func TestLoginUnknownUsername(t *testing.T) {
	s := newTestService(&fakeIdentity{})

	_, err := s.Login(context.Background(), LoginInput{Identifier: "nobody", Password: "secret1"})
	assert.ErrorIs(t, err, ErrUsernameNotFound)
}

func TestLoginValidation(t *testing.T) {
	s := newTestService(&fakeIdentity{})

	_, err := s.Login(context.Background(), LoginInput{Identifier: "", Password: "secret1"})
	assert.ErrorIs(t, err, ErrBadRequest)

	_, err = s.Login(context.Background(), LoginInput{Identifier: "esraa", Password: "short"})
	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestLoginNormalizesProviderErrors(t *testing.T) {
	cases := []struct {
		code string
		want error
	}{
		{"EMAIL_NOT_FOUND", ErrUserNotFound},
		{"INVALID_PASSWORD", ErrInvalidCredentials},
		{"INVALID_LOGIN_CREDENTIALS", ErrInvalidCredentials},
		{"TOO_MANY_ATTEMPTS_TRY_LATER : retry later", ErrTooManyRequests},
		{"INVALID_EMAIL", ErrInvalidEmail},
	}
	for _, tc := range cases {
		idp := &fakeIdentity{verifyErr: &googleapi.Error{Code: 400, Message: tc.code}}
		s := newTestService(idp)
		_, err := s.Login(context.Background(), LoginInput{Identifier: "esraa@example.com", Password: "secret1"})
		assert.ErrorIs(t, err, tc.want, "code=%s", tc.code)
	}
}

func TestResetPassword(t *testing.T) {
	idp := &fakeIdentity{}
	s := newTestService(idp)

	err := s.ResetPassword(context.Background(), ResetPasswordInput{Identifier: "esraa"})
	require.NoError(t, err)
	assert.Equal(t, "esraa@example.com", idp.lastEmail)

	err = s.ResetPassword(context.Background(), ResetPasswordInput{Identifier: "nobody"})
	assert.ErrorIs(t, err, ErrUsernameNotFound)
}

func TestResetPasswordNormalizesErrors(t *testing.T) {
	idp := &fakeIdentity{resetErr: &googleapi.Error{Code: 400, Message: "EMAIL_NOT_FOUND"}}
	s := newTestService(idp)

	err := s.ResetPassword(context.Background(), ResetPasswordInput{Identifier: "esraa@example.com"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestLoginMintsSessionCookie(t *testing.T) {
	users := &fakeUsers{emails: map[string]string{"esraa": "esraa@example.com"}}
	s := NewService(&fakeIdentity{}, users, &fakeCookies{claims: map[string]any{"admin": true}})

	sess, err := s.Login(context.Background(), LoginInput{Identifier: "esraa", Password: "secret1", RememberMe: true})
	require.NoError(t, err)
	assert.Equal(t, "cookie-1", sess.SessionCookie)
	assert.True(t, sess.Admin)
}

func TestLoginSurvivesVerifierFailure(t *testing.T) {
	users := &fakeUsers{emails: map[string]string{"esraa": "esraa@example.com"}}
	cookies := &fakeCookies{verifyErr: errors.New("verifier unavailable")}
	s := NewService(&fakeIdentity{}, users, cookies)

	sess, err := s.Login(context.Background(), LoginInput{Identifier: "esraa", Password: "secret1"})
	require.NoError(t, err)
	assert.False(t, sess.Admin)
	assert.Equal(t, "cookie-1", sess.SessionCookie)
}

func TestLoginDegradesWhenCookieMintFails(t *testing.T) {
	users := &fakeUsers{emails: map[string]string{"esraa": "esraa@example.com"}}
	cookies := &fakeCookies{cookieErr: errors.New("cookie backend down"), claims: map[string]any{"admin": true}}
	s := NewService(&fakeIdentity{}, users, cookies)

	sess, err := s.Login(context.Background(), LoginInput{Identifier: "esraa", Password: "secret1"})
	require.NoError(t, err)
	assert.Empty(t, sess.SessionCookie)
	assert.True(t, sess.Admin)
}

func TestIsAdmin(t *testing.T) {
	assert.True(t, IsAdmin(map[string]any{"admin": true}))
	assert.True(t, IsAdmin(map[string]any{"role": "admin"}))
	assert.False(t, IsAdmin(map[string]any{"admin": false}))
	assert.False(t, IsAdmin(map[string]any{"role": "seller"}))
	assert.False(t, IsAdmin(nil))
}
