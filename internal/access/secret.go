package access

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt cost used when config leaves it unset.
const DefaultCost = 10

// ErrEmptySecret is returned when hashing an empty password.
var ErrEmptySecret = errors.New("empty password")

// HashSecret hashes a protection password for storage in Protection.Secret.
// cost <= 0 selects DefaultCost.
func HashSecret(plain string, cost int) (string, error) {
	if plain == "" {
		return "", ErrEmptySecret
	}
	if cost <= 0 {
		cost = DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(hash), nil
}

// CheckSecret reports whether plain matches a hash produced by HashSecret.
// An empty hash never matches.
func CheckSecret(hash, plain string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
