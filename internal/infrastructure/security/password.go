package security

import "golang.org/x/crypto/bcrypt"

// BcryptVerifier is the credential verifier used for account passwords.
type BcryptVerifier struct {
	cost int
}

// NewBcryptVerifier returns a verifier hashing at cost, or bcrypt.DefaultCost
// when cost is outside bcrypt's accepted range.
func NewBcryptVerifier(cost int) *BcryptVerifier {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptVerifier{cost: cost}
}

func (v *BcryptVerifier) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), v.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify compares in constant time. Malformed hashes simply do not match.
func (v *BcryptVerifier) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
