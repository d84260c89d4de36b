package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes the organizer password with bcrypt. The result is what
// ORGANIZER_PASSWORD_HASH expects and what `splitctl hash-password` prints.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPasswordHash reports whether password matches the organizer hash.
// An empty hash never matches, which keeps login disabled until one is configured.
func CheckPasswordHash(password, hash string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
