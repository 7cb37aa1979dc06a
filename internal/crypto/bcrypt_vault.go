package crypto

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordTooLong is returned for passwords bcrypt cannot hash (> 72 bytes).
var ErrPasswordTooLong = errors.New("password is too long")

// BcryptVault is a CredentialVault backed by bcrypt.
type BcryptVault struct {
	cost int
}

// NewBcryptVault returns a vault hashing with cost, or bcrypt.DefaultCost
// when cost is out of bcrypt's range.
func NewBcryptVault(cost int) *BcryptVault {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptVault{cost: cost}
}

func (v *BcryptVault) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), v.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", ErrPasswordTooLong
	}
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

func (v *BcryptVault) Verify(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
