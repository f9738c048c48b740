package auth

import (
	"regexp"

	"github.com/dmitrijs2005/gophsecrets/internal/common"
)

// localpart@domain.tld, no whitespace anywhere. RE2's \s is ASCII only, so
// the class lists the Unicode space separators, line separators and BOM too.
const emailPart = `[^\t\n\v\f\r\p{Zs}\x{2028}\x{2029}\x{FEFF}@]+`

var emailRe = regexp.MustCompile(`^` + emailPart + `@` + emailPart + `\.` + emailPart + `$`)

const (
	minPasswordLen = 6
	maxPasswordLen = 8
)

// ValidateEmail checks the address shape only; deliverability is not checked.
func ValidateEmail(email string) error {
	if !emailRe.MatchString(email) {
		return common.ErrInvalidEmailFormat
	}
	return nil
}

// ValidatePassword requires 6-8 characters with at least one digit, one
// lowercase and one uppercase ASCII letter. Line breaks are not allowed.
func ValidatePassword(password string) error {
	n := len([]rune(password))
	if n < minPasswordLen || n > maxPasswordLen {
		return common.ErrWeakPassword
	}

	var digit, lower, upper bool
	for _, r := range password {
		switch {
		case r >= '0' && r <= '9':
			digit = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case isLineTerminator(r):
			return common.ErrWeakPassword
		}
	}
	if !digit || !lower || !upper {
		return common.ErrWeakPassword
	}
	return nil
}

func isLineTerminator(r rune) bool {
	return r == '\n' || r == '\r' || r == '\u2028' || r == '\u2029'
}

// ValidateCredentials runs the email check first, then the password check.
func ValidateCredentials(email, password string) error {
	if err := ValidateEmail(email); err != nil {
		return err
	}
	return ValidatePassword(password)
}
