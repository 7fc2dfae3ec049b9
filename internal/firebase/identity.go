package firebase

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/api/googleapi"
	identitytoolkit "google.golang.org/api/identitytoolkit/v3"
	"google.golang.org/api/option"
)

// IdentityClient talks to the Identity Toolkit REST API, which is the only
// way to do email/password sign-in server side. The Admin SDK deliberately
// does not expose password verification.
type IdentityClient struct {
	svc *identitytoolkit.Service
}

// PasswordTokens is what a successful password sign-in yields.
type PasswordTokens struct {
	UID          string
	IDToken      string
	RefreshToken string
	ExpiresIn    int64
}

func NewIdentityClient(ctx context.Context, apiKey string) (*IdentityClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("missing FIREBASE_WEB_API_KEY")
	}
	svc, err := identitytoolkit.NewService(ctx, option.WithAPIKey(apiKey), option.WithoutAuthentication())
	if err != nil {
		return nil, err
	}
	return &IdentityClient{svc: svc}, nil
}

func (c *IdentityClient) VerifyPassword(ctx context.Context, email, password string) (*PasswordTokens, error) {
	resp, err := c.svc.Relyingparty.VerifyPassword(&identitytoolkit.IdentitytoolkitRelyingpartyVerifyPasswordRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	}).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return &PasswordTokens{
		UID:          resp.LocalId,
		IDToken:      resp.IdToken,
		RefreshToken: resp.RefreshToken,
		ExpiresIn:    resp.ExpiresIn,
	}, nil
}

func (c *IdentityClient) SendPasswordReset(ctx context.Context, email string) error {
	_, err := c.svc.Relyingparty.GetOobConfirmationCode(&identitytoolkit.Relyingparty{
		RequestType: "PASSWORD_RESET",
		Email:       email,
	}).Context(ctx).Do()
	return err
}

// ErrorCode extracts the Identity Toolkit error code (EMAIL_NOT_FOUND,
// INVALID_PASSWORD, TOO_MANY_ATTEMPTS_TRY_LATER, ...) from a call error.
func ErrorCode(err error) string {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return gerr.Message
	}
	return ""
}
