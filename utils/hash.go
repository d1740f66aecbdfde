package utils

import "golang.org/x/crypto/bcrypt"

// hashCost trades login latency for brute-force resistance; raising it only
// affects newly stored hashes.
const hashCost = 14

// HashPassword returns the bcrypt hash of a plaintext password.
func HashPassword(p string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(p), hashCost)
	return string(bytes), err
}

// CheckPassword reports whether the plaintext matches the stored hash.
func CheckPassword(hash, pass string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pass)) == nil
}
