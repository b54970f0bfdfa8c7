// Package security provides password hashing and verification for user accounts.
// It leverages the bcrypt algorithm to hash passwords and compare hashed values.
package security

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword takes a plaintext password and returns its bcrypt hash.
// bcrypt rejects passwords longer than 72 bytes; the caller validates length first.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword compares a bcrypt hashed password with its possible plaintext equivalent.
// It returns nil on success, or bcrypt.ErrMismatchedHashAndPassword when they do not match.
func CheckPassword(hashedPassword, userPassword string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(userPassword))
}
