package i18n

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// FormatText normalizes UI labels: literal periods are stripped and the
// result is title-cased. Cosmetic only, never applied to persisted data.
// Arabic text has no case, so it passes through with periods removed.
func FormatText(s string) string {
	s = strings.ReplaceAll(s, ".", "")
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	return titleCaser.String(s)
}
