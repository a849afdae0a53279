package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// HashCost is the bcrypt work factor. bcrypt salts every hash itself, so two
// hashes of the same plaintext never match byte for byte.
const HashCost = 10

// Hash returns the bcrypt hash of plaintext. The returned error never
// contains the plaintext.
func Hash(plaintext string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(plaintext), HashCost)
	if err != nil {
		return "", errors.New("error occurred while generate hash from password")
	}

	return string(hashedPassword), nil
}

// Compare reports whether plaintext matches hashedValue. A malformed hash is
// treated as a mismatch, not an error.
func Compare(plaintext, hashedValue string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedValue), []byte(plaintext)) == nil
}
