package kernel

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"maintenance/internal/pkg/errs"
)

// MinNameLength is the shortest accepted first name, last name or area.
const MinNameLength = 2

// RequireText trims value and requires at least minLen characters.
// The trimmed value is returned.
func RequireText(field, value string, minLen int) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", errs.NewValueIsRequiredError(field)
	}
	if n := utf8.RuneCountInString(trimmed); n < minLen {
		return "", errs.NewValueIsInvalidErrorWithCause(field,
			fmt.Errorf("%d characters, at least %d required", n, minLen))
	}
	return trimmed, nil
}

// RequireName applies RequireText with MinNameLength and additionally requires a letter,
// so "42" or "--" are not accepted as names.
func RequireName(field, value string) (string, error) {
	trimmed, err := RequireText(field, value, MinNameLength)
	if err != nil {
		return "", err
	}
	if !strings.ContainsFunc(trimmed, unicode.IsLetter) {
		return "", errs.NewValueIsInvalidErrorWithCause(field, fmt.Errorf("%q contains no letters", trimmed))
	}
	return trimmed, nil
}
