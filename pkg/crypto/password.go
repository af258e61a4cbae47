package crypto

import "golang.org/x/crypto/bcrypt"

// hashCost matches the cost factor the product has always used for stored
// credentials; raising it would invalidate no hashes but slow signup.
const hashCost = 10

// HashPassword hashes plaintext using bcrypt.
func HashPassword(plain string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(plain), hashCost)
}

// ComparePassword compares plaintext to hashed secret.
func ComparePassword(hash []byte, plain string) error {
	return bcrypt.CompareHashAndPassword(hash, []byte(plain))
}
