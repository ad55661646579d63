package locale

import (
	"strings"

	"golang.org/x/text/language"
)

// Default is the tag used when neither the caller nor the environment
// supplies a usable locale.
var Default = language.AmericanEnglish

// Resolve parses a BCP-47 tag. Empty or malformed tags yield fallback and
// ok=false; the returned tag is always usable for formatting.
func Resolve(tag string, fallback language.Tag) (language.Tag, bool) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return fallback, false
	}
	t, err := language.Parse(tag)
	if err != nil {
		return fallback, false
	}
	return t, true
}

// FromPOSIX converts a POSIX locale name such as "es_ES.UTF-8" or
// "de_DE@euro" to a BCP-47 tag string. "C", "POSIX" and empty names map to "".
func FromPOSIX(name string) string {
	name = strings.TrimSpace(name)
	if i := strings.IndexAny(name, ".@"); i >= 0 {
		name = name[:i]
	}
	switch name {
	case "", "C", "POSIX":
		return ""
	}
	return strings.ReplaceAll(name, "_", "-")
}

// FromEnv returns the BCP-47 tag implied by the process locale variables,
// checked in POSIX precedence order for numeric formatting.
func FromEnv(getenv func(string) string) string {
	for _, key := range []string{"LC_ALL", "LC_NUMERIC", "LANG"} {
		if tag := FromPOSIX(getenv(key)); tag != "" {
			return tag
		}
	}
	return ""
}
