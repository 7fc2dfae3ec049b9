package whatsapp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderLinkEnglish(t *testing.T) {
	link, err := OrderLink("962771234567", "Kunafa", "Al-Quds", "en")
	require.NoError(t, err)
	assert.Equal(t,
		"https://wa.me/962771234567?text=Hello%2C%20I%20would%20like%20to%20order%20Kunafa%20from%20Al-Quds",
		link)
}

func TestOrderLinkStripsPlusAndSpacing(t *testing.T) {
	link, err := OrderLink("+962 77 123 4567", "Kunafa", "Al-Quds", "en")
	require.NoError(t, err)
	assert.Contains(t, link, "https://wa.me/962771234567?text=")
}

func TestOrderLinkArabic(t *testing.T) {
	link, err := OrderLink("+962771234567", "كنافة", "القدس", "ar")
	require.NoError(t, err)
	assert.Contains(t, link, "https://wa.me/962771234567?text=")
	// arabic text must be percent-encoded, never raw
	assert.NotContains(t, link, "كنافة")
	assert.NotContains(t, link, "+")
}

func TestOrderLinkMissingNumber(t *testing.T) {
	_, err := OrderLink("", "Kunafa", "Al-Quds", "en")
	assert.ErrorIs(t, err, ErrNumberNotConfigured)

	_, err = OrderLink("  +  ", "Kunafa", "Al-Quds", "en")
	assert.ErrorIs(t, err, ErrNumberNotConfigured)
}
