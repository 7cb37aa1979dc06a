package utils

import "github.com/google/uuid"

// UUIDGenerator issues time-ordered (v7) identifiers for users, JDs and
// AI results.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// IsValidID reports whether id is a canonical UUID string.
func IsValidID(id string) bool {
	return uuid.Validate(id) == nil && len(id) == 36
}
