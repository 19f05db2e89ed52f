// Package formatpkg converts client identifiers between their raw digit form
// and the canonical form kept in storage and shown to users.
package formatpkg

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrMalformed indicates that the value does not have the expected shape.
var ErrMalformed = errors.New("malformed identifier")

var (
	phonePattern = regexp.MustCompile(`^\((\d{3})\) (\d{3})-(\d{4})$`)
	einPattern   = regexp.MustCompile(`^(\d{2})-(\d{7})$`)
)

// IsDigits reports whether s consists of exactly n ASCII digits.
func IsDigits(s string, n int) bool {
	if len(s) != n {
		return false
	}

	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}

// Digits drops every non-digit rune from s.
func Digits(s string) string {
	var sb strings.Builder

	for _, r := range s {
		if r >= '0' && r <= '9' {
			_, _ = sb.WriteRune(r)
		}
	}

	return sb.String()
}

// Phone formats 10 raw digits as (###) ###-####.
func Phone(digits string) (string, error) {
	if !IsDigits(digits, 10) {
		return "", fmt.Errorf("%w: phone %q", ErrMalformed, digits)
	}

	return fmt.Sprintf("(%s) %s-%s", digits[:3], digits[3:6], digits[6:]), nil
}

// ParsePhone is the exact inverse of Phone.
func ParsePhone(s string) (string, error) {
	m := phonePattern.FindStringSubmatch(s)
	if m == nil {
		return "", fmt.Errorf("%w: phone %q", ErrMalformed, s)
	}

	return m[1] + m[2] + m[3], nil
}

// EIN formats 9 raw digits as ##-#######.
func EIN(digits string) (string, error) {
	if !IsDigits(digits, 9) {
		return "", fmt.Errorf("%w: ein %q", ErrMalformed, digits)
	}

	return digits[:2] + "-" + digits[2:], nil
}

// ParseEIN is the exact inverse of EIN.
func ParseEIN(s string) (string, error) {
	m := einPattern.FindStringSubmatch(s)
	if m == nil {
		return "", fmt.Errorf("%w: ein %q", ErrMalformed, s)
	}

	return m[1] + m[2], nil
}

// MaskTaxID hides all but the last four digits of a tax id.
func MaskTaxID(digits string) string {
	if !IsDigits(digits, 9) {
		return "***-**-****"
	}

	return "***-**-" + digits[5:]
}
