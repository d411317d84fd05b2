package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives a salted bcrypt hash from the given plain-text
// password using the library's default cost. The returned string embeds the
// salt and cost and can be stored directly.
//
// bcrypt rejects passwords longer than 72 bytes; the error is propagated to
// the caller rather than silently truncating.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// CheckPasswordHash compares a stored bcrypt hash against a candidate
// plain-text password. Returns nil on match and a non-nil error on
// mismatch or malformed hash.
func CheckPasswordHash(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
