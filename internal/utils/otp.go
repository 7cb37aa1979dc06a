package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// GenerateNumericOTP returns a uniformly random, zero-padded numeric code of
// n digits. n <= 0 falls back to 6 digits.
func GenerateNumericOTP(n int) (string, error) {
	if n <= 0 {
		n = 6
	}
	max := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
	num, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("error generating otp: %w", err)
	}

	return fmt.Sprintf("%0*d", n, num.Int64()), nil
}
