package service

import "golang.org/x/crypto/bcrypt"

const bcryptCost = 12

// Hasher wraps bcrypt for password storage. Each Hash call salts
// independently, so two hashes of the same password differ while both verify.
type Hasher struct {
	cost int
}

func NewHasher() *Hasher {
	return &Hasher{cost: bcryptCost}
}

func (h *Hasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches digest. A mismatch is false, not
// an error.
func (h *Hasher) Verify(plaintext string, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
