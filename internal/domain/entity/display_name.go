package entity

import (
	"regexp"
	"strings"

	domainerrors "nutria/internal/domain/errors"
)

// A display name is "Category: Addition". Each half is a run of word
// characters, spaces and -()[]{}#%!.,;* so the colon separating them is the
// only one the whole name may contain.
const namePart = `[\p{L}\p{N}_ \-()\[\]{}#%!.,;*]+`

var (
	displayNamePattern = regexp.MustCompile(`^\s*(` + namePart + `)\s*:\s*(` + namePart + `)\s*$`)
	categoryPattern    = regexp.MustCompile(`^` + namePart + `$`)
)

// DisplayName joins a category and a name addition.
func DisplayName(category, nameAddition string) string {
	return category + ": " + nameAddition
}

// SplitDisplayName splits a combined name into its category and name
// addition. When the name does not have the expected form, ok is false and
// the whole trimmed string is the name addition.
func SplitDisplayName(raw string) (category, nameAddition string, ok bool) {
	m := displayNamePattern.FindStringSubmatch(raw)
	if m == nil {
		return "", strings.TrimSpace(raw), false
	}

	category = strings.TrimSpace(m[1])
	nameAddition = strings.TrimSpace(m[2])
	if category == "" || nameAddition == "" {
		return "", strings.TrimSpace(raw), false
	}

	return category, nameAddition, true
}

// RequireCategory is SplitDisplayName for callers that cannot do without a category.
func RequireCategory(raw string) (category, nameAddition string, err error) {
	category, nameAddition, ok := SplitDisplayName(raw)
	if !ok {
		return "", "", &domainerrors.MalformedNameError{Name: raw}
	}

	return category, nameAddition, nil
}
