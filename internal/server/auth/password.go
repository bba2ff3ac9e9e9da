package auth

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/dmitrijs2005/feastkeeper/internal/common"
	"golang.org/x/crypto/bcrypt"
)

// HashCost is the bcrypt cost used for new hashes. Older hashes keep
// verifying after it changes because the cost is embedded in each hash.
const HashCost = 12

// MaxPasswordBytes is the longest password bcrypt can tell apart; it ignores
// every byte after it.
const MaxPasswordBytes = 72

// Hasher produces and checks bcrypt password hashes. It holds no mutable
// state and is safe for concurrent use.
type Hasher struct {
	cost int
}

func NewHasher() *Hasher {
	return &Hasher{cost: passwordHashCost()}
}

// NewHasherWithCost returns a Hasher using cost, clamped to the range bcrypt
// accepts.
func NewHasherWithCost(cost int) *Hasher {
	cost = max(cost, bcrypt.MinCost)
	cost = min(cost, bcrypt.MaxCost)
	return &Hasher{cost: cost}
}

// Hash returns a "$2a$<cost>$<salt><digest>" string with a fresh random
// salt. Empty, non UTF-8 or longer than 72 bytes passwords fail with
// common.ErrEncoding.
func (h *Hasher) Hash(password string) (string, error) {
	return h.HashBytes([]byte(password))
}

// HashBytes is Hash for a password held in a buffer the caller wipes.
func (h *Hasher) HashBytes(password []byte) (string, error) {
	if len(password) == 0 || !utf8.Valid(password) {
		return "", common.ErrEncoding
	}
	if len(password) > MaxPasswordBytes {
		return "", fmt.Errorf("%w: %v", common.ErrEncoding, bcrypt.ErrPasswordTooLong)
	}

	b, err := bcrypt.GenerateFromPassword(password, h.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", fmt.Errorf("%w: %v", common.ErrEncoding, err)
		}
		return "", err
	}
	return string(b), nil
}

// Verify reports whether password matches hash. A wrong password is
// (false, nil); a hash that is not a bcrypt string fails with
// common.ErrMalformedHash.
//
// Passwords over MaxPasswordBytes never match, since no stored hash can come
// from one. The comparison still runs so they take as long as any other.
func (h *Hasher) Verify(password, hash string) (bool, error) {
	if _, err := bcrypt.Cost([]byte(hash)); err != nil {
		return false, fmt.Errorf("%w: %v", common.ErrMalformedHash, err)
	}

	tooLong := len(password) > MaxPasswordBytes
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return !tooLong, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword), errors.Is(err, bcrypt.ErrPasswordTooLong):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %v", common.ErrMalformedHash, err)
	}
}
