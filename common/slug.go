package common

import (
	"fmt"
	"strings"
	"unicode"
)

// Slugify converts a name into a lowercase URL-safe slug: non-alphanumeric
// runs collapse to a single hyphen and leading/trailing hyphens are trimmed.
// When the input produces nothing usable the fallback is returned instead.
func Slugify(input, fallback string) (string, error) {
	var b strings.Builder
	lastHyphen := true // suppress leading hyphen

	for _, r := range strings.ToLower(strings.TrimSpace(input)) {
		switch {
		case unicode.IsLetter(r) && r < 128, unicode.IsDigit(r) && r < 128:
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		if fallback == "" {
			return "", fmt.Errorf("cannot derive slug from %q", input)
		}
		return fallback, nil
	}
	return slug, nil
}
