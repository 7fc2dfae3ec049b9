package i18n

import (
	"fmt"
	"net/http"
	"strings"
)

const (
	LangEN = "en"
	LangAR = "ar"
)

// Direction is the document text direction for a language.
type Direction string

const (
	LTR Direction = "ltr"
	RTL Direction = "rtl"
)

// T looks up key in the dictionary for lang. Missing keys fall back to the
// key itself rather than erroring, so untranslated copy stays visible.
func T(lang, key string) string {
	if d, ok := dictionaries[Normalize(lang)]; ok {
		if v, ok := d[key]; ok {
			return v
		}
	}
	return key
}

func IsRTL(lang string) bool {
	return Normalize(lang) == LangAR
}

func Dir(lang string) Direction {
	if IsRTL(lang) {
		return RTL
	}
	return LTR
}

// Normalize maps any language hint to a supported language, defaulting to en.
func Normalize(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(lang, "-_"); i > 0 {
		lang = lang[:i]
	}
	if lang == LangAR {
		return LangAR
	}
	return LangEN
}

// FromRequest picks the request language: explicit ?lang= wins, then the
// first Accept-Language entry.
func FromRequest(r *http.Request) string {
	if l := r.URL.Query().Get("lang"); l != "" {
		return Normalize(l)
	}
	al := r.Header.Get("Accept-Language")
	if al != "" {
		first := strings.SplitN(al, ",", 2)[0]
		first = strings.SplitN(first, ";", 2)[0]
		return Normalize(first)
	}
	return LangEN
}

// OrderMessage builds the WhatsApp order message for an item and seller.
func OrderMessage(lang, itemName, seller string) string {
	return fmt.Sprintf(T(lang, "whatsapp.orderTemplate"), itemName, seller)
}
