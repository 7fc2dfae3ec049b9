package http

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Esraa00Tarek/SuperStore-sub000/internal/domain/auth"
	"github.com/Esraa00Tarek/SuperStore-sub000/internal/domain/catalog"
	"github.com/Esraa00Tarek/SuperStore-sub000/internal/domain/profile"
	"github.com/Esraa00Tarek/SuperStore-sub000/internal/i18n"
)

func TestMapCatalogError(t *testing.T) {
	status, _ := mapCatalogError(fmt.Errorf("%w: item abc", catalog.ErrNotFound))
	assert.Equal(t, 404, status)

	status, _ = mapCatalogError(fmt.Errorf("%w: bad price", catalog.ErrBadRequest))
	assert.Equal(t, 400, status)

	status, msg := mapCatalogError(errors.New("firestore exploded"))
	assert.Equal(t, 500, status)
	assert.Equal(t, "internal error", msg)
}

func TestMapProfileErrorUsernameConflict(t *testing.T) {
	status, _ := mapProfileError(fmt.Errorf("%w: esraa", profile.ErrUsernameTaken))
	assert.Equal(t, 409, status)
}

func TestMapAuthErrorLocalized(t *testing.T) {
	status, msg := mapAuthError(fmt.Errorf("%w: INVALID_PASSWORD", auth.ErrInvalidCredentials), i18n.LangAR)
	assert.Equal(t, 401, status)
	assert.Equal(t, i18n.T(i18n.LangAR, "auth.invalidCredentials"), msg)

	status, msg = mapAuthError(fmt.Errorf("%w: EMAIL_NOT_FOUND", auth.ErrUserNotFound), i18n.LangEN)
	assert.Equal(t, 404, status)
	assert.Equal(t, "No account matches this email", msg)

	status, _ = mapAuthError(fmt.Errorf("%w: TOO_MANY_ATTEMPTS_TRY_LATER", auth.ErrTooManyRequests), i18n.LangEN)
	assert.Equal(t, 429, status)

	status, msg = mapAuthError(errors.New("network down"), i18n.LangEN)
	assert.Equal(t, 500, status)
	assert.Equal(t, i18n.T(i18n.LangEN, "error.generic"), msg)
}
