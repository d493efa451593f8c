package password

import "golang.org/x/crypto/bcrypt"

// MinLength is the minimum accepted password length
const MinLength = 8

// Hash hashes a password using bcrypt with the given cost.
func Hash(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// Verify compares a plaintext password with a hash
func Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// Acceptable checks if a password meets the length requirement
func Acceptable(password string) bool {
	return len(password) >= MinLength
}
