package pkg

import "golang.org/x/crypto/bcrypt"

// DefaultBcryptCost is the work factor for new moderator passwords.
// 2^12 rounds, roughly a quarter second per hash on current hardware.
const DefaultBcryptCost = 12

// Hasher wraps bcrypt with an injectable cost so tests can run at the
// minimum cost instead of paying the production work factor.
type Hasher struct {
	cost int
}

func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	return &Hasher{cost: cost}
}

// Hash returns the bcrypt hash of plain. The salt and cost are embedded
// in the output, which is stored as-is.
func (h *Hasher) Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify reports whether plain matches the stored bcrypt hash.
func (h *Hasher) Verify(hash, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}
