package validators

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	DefaultPasswordMinLength = 8
	DefaultPasswordSpecials  = `!@#$%^&*(),.?":{}|<>`
)

// PasswordPolicy is the signup password strength rule.
type PasswordPolicy struct {
	MinLength int
	Specials  string
}

// NewPasswordPolicy returns the default policy: at least 8 characters, one
// digit and one character from DefaultPasswordSpecials.
func NewPasswordPolicy() PasswordPolicy {
	return PasswordPolicy{MinLength: DefaultPasswordMinLength, Specials: DefaultPasswordSpecials}
}

// Check returns the first rule password breaks, or nil.
func (p PasswordPolicy) Check(password string) error {
	if utf8.RuneCountInString(password) < p.MinLength {
		return ErrPasswordTooShort
	}
	if !strings.ContainsFunc(password, unicode.IsDigit) {
		return ErrPasswordNoDigit
	}
	if !strings.ContainsAny(password, p.Specials) {
		return ErrPasswordNoSpecial
	}

	return nil
}
