package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives a bcrypt hash from the given plaintext password using
// the library's default cost. The returned string embeds the salt and cost,
// so it is self-contained for later verification.
//
// Returns an error if the password exceeds bcrypt's 72-byte input limit or
// hashing fails.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hashed), nil
}

// CheckPassword reports whether the plaintext password matches the stored
// bcrypt hash. The comparison is constant-time within bcrypt itself.
func CheckPassword(hashedPassword, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}
