package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// Hashing cost for strict mode
const BcryptCost = 12

// HashPassword hashes a password for strict-mode storage.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPassword compares a stored credential against the given password.
// When hashed is false the stored value is compared as plain text, which is
// the historical behavior of this system; strict mode compares bcrypt hashes.
func CheckPassword(stored, password string, hashed bool) bool {
	if hashed {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(password)) == 1
}
