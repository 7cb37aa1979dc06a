package validators

import (
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
)

// EmailPolicy normalizes addresses and enforces the signup domain allow-list.
type EmailPolicy struct {
	allowedDomains []string
	validate       *validator.Validate
}

// NewEmailPolicy builds a policy accepting the given domains (case-insensitive).
func NewEmailPolicy(allowedDomains []string) EmailPolicy {
	domains := make([]string, 0, len(allowedDomains))
	for _, d := range allowedDomains {
		if d = strings.ToLower(strings.TrimSpace(d)); d != "" {
			domains = append(domains, d)
		}
	}

	return EmailPolicy{allowedDomains: domains, validate: validator.New()}
}

// NormalizeEmail trims and lowercases email.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Check validates an already normalized address and its domain.
func (p EmailPolicy) Check(email string) error {
	if err := p.validate.Var(email, "required,email"); err != nil {
		return ErrInvalidEmail
	}

	_, domain, _ := strings.Cut(email, "@")
	if !slices.Contains(p.allowedDomains, domain) {
		return ErrEmailDomainNotAllowed
	}

	return nil
}
