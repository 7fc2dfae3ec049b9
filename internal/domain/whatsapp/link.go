package whatsapp

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/Esraa00Tarek/SuperStore-sub000/internal/i18n"
	"github.com/Esraa00Tarek/SuperStore-sub000/internal/utils"
)

// ErrNumberNotConfigured is returned when no number is set for the requested
// item type; callers must surface it instead of building a numberless link.
var ErrNumberNotConfigured = errors.New("whatsapp number not configured")

func IsErrNumberNotConfigured(err error) bool { return errors.Is(err, ErrNumberNotConfigured) }

// OrderLink builds a wa.me deep link carrying the locale-appropriate order
// message for an item and its seller. The number may carry a leading + or
// spacing; wa.me wants bare digits.
func OrderLink(number, itemName, seller, lang string) (string, error) {
	digits := utils.PhoneDigits(number)
	if digits == "" {
		return "", fmt.Errorf("%w", ErrNumberNotConfigured)
	}
	msg := i18n.OrderMessage(lang, itemName, seller)
	return "https://wa.me/" + digits + "?text=" + encode(msg), nil
}

// encode percent-encodes the message; wa.me expects %20 for spaces, not the
// form-encoding +.
func encode(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
