// Package credentials hashes and checks account passwords with bcrypt.
package credentials

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Cost matches the salt rounds used for every stored hash.
const Cost = 10

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), Cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// ComparePassword reports whether candidate produces hash.
func ComparePassword(hash, candidate string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(candidate)) == nil
}
