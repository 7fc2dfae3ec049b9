package http

import (
	"github.com/Esraa00Tarek/SuperStore-sub000/internal/domain/auth"
	"github.com/Esraa00Tarek/SuperStore-sub000/internal/domain/catalog"
	"github.com/Esraa00Tarek/SuperStore-sub000/internal/domain/contact"
	"github.com/Esraa00Tarek/SuperStore-sub000/internal/domain/profile"
	"github.com/Esraa00Tarek/SuperStore-sub000/internal/domain/settings"
	"github.com/Esraa00Tarek/SuperStore-sub000/internal/i18n"
)

func mapCatalogError(err error) (int, string) {
	switch {
	case catalog.IsErrNotFound(err):
		return 404, err.Error()
	case catalog.IsErrBadRequest(err):
		return 400, err.Error()
	}
	return 500, "internal error"
}

func mapSettingsError(err error) (int, string) {
	if settings.IsErrBadRequest(err) {
		return 400, err.Error()
	}
	return 500, "internal error"
}

func mapContactError(err error) (int, string) {
	switch {
	case contact.IsErrNotFound(err):
		return 404, err.Error()
	case contact.IsErrBadRequest(err):
		return 400, err.Error()
	}
	return 500, "internal error"
}

func mapProfileError(err error) (int, string) {
	switch {
	case profile.IsErrNotFound(err):
		return 404, err.Error()
	case profile.IsErrBadRequest(err):
		return 400, err.Error()
	case profile.IsErrUsernameTaken(err):
		return 409, err.Error()
	}
	return 500, "internal error"
}

// mapAuthError localizes the provider-facing failures; the storefront shows
// these messages directly.
func mapAuthError(err error, lang string) (int, string) {
	switch {
	case auth.IsErrBadRequest(err):
		return 400, err.Error()
	case auth.IsErrUsernameNotFound(err):
		return 404, i18n.T(lang, "auth.usernameNotFound")
	case auth.IsErrUserNotFound(err):
		return 404, i18n.T(lang, "auth.userNotFound")
	case auth.IsErrInvalidCredentials(err):
		return 401, i18n.T(lang, "auth.invalidCredentials")
	case auth.IsErrInvalidEmail(err):
		return 400, i18n.T(lang, "auth.invalidEmail")
	case auth.IsErrTooManyRequests(err):
		return 429, i18n.T(lang, "auth.tooManyRequests")
	}
	return 500, i18n.T(lang, "error.generic")
}
