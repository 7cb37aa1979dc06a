package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "alice@gmail.com", NormalizeEmail("  Alice@Gmail.COM "))
}

func TestEmailPolicy_Check(t *testing.T) {
	policy := NewEmailPolicy([]string{" Gmail.com ", ""})

	tests := []struct {
		name    string
		email   string
		wantErr error
	}{
		{name: "allowed domain", email: "alice@gmail.com"},
		{name: "other domain", email: "alice@yahoo.com", wantErr: ErrEmailDomainNotAllowed},
		{name: "subdomain is not the domain", email: "alice@mail.gmail.com", wantErr: ErrEmailDomainNotAllowed},
		{name: "suffix trick", email: "alice@evilgmail.com", wantErr: ErrEmailDomainNotAllowed},
		{name: "missing at", email: "alice.gmail.com", wantErr: ErrInvalidEmail},
		{name: "empty", email: "", wantErr: ErrInvalidEmail},
		{name: "display name form", email: "Alice <alice@gmail.com>", wantErr: ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := policy.Check(tt.email)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
