package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/feastkeeper/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Codec issues and verifies HS256 access tokens carrying a subject claim.
// The secret is fixed for the Codec's lifetime; a new secret invalidates
// every token signed with the old one.
type Codec struct {
	secret []byte
	now    func() time.Time
}

func NewCodec(secret []byte) *Codec {
	return &Codec{secret: secret, now: time.Now}
}

// Issue signs {sub, iat, exp = now + ttl}. A non-positive ttl yields a token
// that is already expired.
func (c *Codec) Issue(subject string, ttl time.Duration) (string, error) {
	now := c.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	})

	tokenString, err := token.SignedString(c.secret)
	if err != nil {
		return "", err
	}
	return tokenString, nil
}

// Verify checks signature and expiry and returns the subject claim. Errors:
// common.ErrMalformedToken, common.ErrInvalidSignature,
// common.ErrTokenExpired (now >= exp), common.ErrMissingClaim.
func (c *Codec) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) { return c.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		return "", tokenError(err)
	}

	if claims.Subject == "" {
		return "", common.ErrMissingClaim
	}
	return claims.Subject, nil
}

func tokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return common.ErrMalformedToken
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return common.ErrInvalidSignature
	case errors.Is(err, jwt.ErrTokenExpired):
		return common.ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenRequiredClaimMissing):
		return common.ErrMissingClaim
	default:
		return common.ErrInvalidToken
	}
}
