package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/feastkeeper/internal/common"
	"github.com/dmitrijs2005/feastkeeper/internal/server/models"
)

// TokenVerifier returns the subject of a valid token.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// UserLookup finds a user by username, failing with common.ErrorNotFound.
type UserLookup interface {
	GetUser(ctx context.Context, username string) (*models.User, error)
}

// Resolver turns a bearer token into the stored user it names.
type Resolver struct {
	tokens TokenVerifier
	users  UserLookup
}

func NewResolver(tokens TokenVerifier, users UserLookup) *Resolver {
	return &Resolver{tokens: tokens, users: users}
}

// Resolve verifies token and looks its subject up on every call, so a user
// removed after issuance is rejected right away. A bad token and an unknown
// subject both yield *UnauthorizedError; store failures are returned as is.
func (r *Resolver) Resolve(ctx context.Context, token string) (*models.User, error) {
	subject, err := r.tokens.Verify(token)
	if err != nil {
		return nil, Unauthorized(err)
	}

	user, err := r.users.GetUser(ctx, subject)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, Unauthorized(fmt.Errorf("subject %q: %w", subject, err))
		}
		return nil, fmt.Errorf("user lookup: %w", err)
	}
	return user, nil
}
