// Package crypto holds the password hashing used for user credentials.
package crypto

// CredentialVault hashes passwords and verifies them against stored hashes.
// Hashes are salted, so hashing the same password twice yields different
// values and equality of hashes cannot be used to compare passwords.
type CredentialVault interface {
	Hash(password string) (string, error)
	Verify(hash, password string) bool
}
