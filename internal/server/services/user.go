// Package services contains server-side business logic. UserService is the
// session facade used by transport handlers: registration, login and
// authentication of bearer tokens.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/feastkeeper/internal/common"
	"github.com/dmitrijs2005/feastkeeper/internal/logging"
	"github.com/dmitrijs2005/feastkeeper/internal/server/auth"
	"github.com/dmitrijs2005/feastkeeper/internal/server/config"
	"github.com/dmitrijs2005/feastkeeper/internal/server/models"
	"github.com/dmitrijs2005/feastkeeper/internal/server/repositories/users"
	"golang.org/x/sync/semaphore"
)

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) (bool, error)
}

// TokenCodec issues and verifies access tokens.
type TokenCodec interface {
	Issue(subject string, ttl time.Duration) (string, error)
	Verify(token string) (string, error)
}

// AccessToken is the result of a successful login.
type AccessToken struct {
	Token     string
	TokenType string
	ExpiresIn time.Duration
}

const dummyPassword = "feastkeeper-dummy-password"

// UserService orchestrates the hasher, the token codec and the user store.
// Password hashing is CPU bound; at most cfg.HashWorkers hash operations run
// at the same time and callers wait for a free slot.
type UserService struct {
	users    users.Repository
	hasher   PasswordHasher
	tokens   TokenCodec
	resolver *auth.Resolver
	tokenTTL time.Duration
	hashPool *semaphore.Weighted
	logger   logging.Logger

	// dummyHash is compared against when the user does not exist, so an
	// unknown username costs the same as a wrong password.
	dummyHash string
}

// NewUserService wires the facade. cfg is read once here. The dummy hash
// for unknown-user logins is computed up front with hasher.
func NewUserService(repo users.Repository, hasher PasswordHasher, tokens TokenCodec, cfg *config.Config, logger logging.Logger) (*UserService, error) {
	workers := cfg.HashWorkers
	if workers < 1 {
		workers = 1
	}

	dummy, err := hasher.Hash(dummyPassword)
	if err != nil {
		return nil, fmt.Errorf("error computing dummy hash: %w", err)
	}

	return &UserService{
		users:     repo,
		hasher:    hasher,
		tokens:    tokens,
		resolver:  auth.NewResolver(tokens, repo),
		tokenTTL:  cfg.AccessTokenValidityDuration,
		hashPool:  semaphore.NewWeighted(int64(workers)),
		logger:    logger.With("module", "user_service"),
		dummyHash: dummy,
	}, nil
}

// Register stores a new user and returns its public fields. A taken
// username yields common.ErrorConflict, whether caught by the pre-check or
// by the store's own insert.
func (s *UserService) Register(ctx context.Context, username, email, password, fullName string) (*models.PublicUser, error) {
	if username == "" {
		return nil, fmt.Errorf("%w: empty username", common.ErrorValidation)
	}

	_, err := s.users.GetUser(ctx, username)
	switch {
	case err == nil:
		return nil, common.ErrorConflict
	case !errors.Is(err, common.ErrorNotFound):
		return nil, fmt.Errorf("error checking user: %w", err)
	}

	var hash string
	if slotErr := s.withHashSlot(ctx, func() { hash, err = s.hasher.Hash(password) }); slotErr != nil {
		return nil, slotErr
	}
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{UserName: username, Email: email, FullName: fullName, PasswordHash: hash}
	if err := s.users.InsertUser(ctx, user); err != nil {
		if errors.Is(err, common.ErrorConflict) {
			return nil, common.ErrorConflict
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	s.logger.Info(ctx, "user registered", "username", username, "user_id", user.ID)
	return user.Public(), nil
}

// Login checks the password and issues an access token. Unknown usernames
// and wrong passwords fail identically; an unknown username still pays for
// one bcrypt comparison.
func (s *UserService) Login(ctx context.Context, username, password string) (*AccessToken, error) {
	user, err := s.users.GetUser(ctx, username)
	if err != nil {
		if !errors.Is(err, common.ErrorNotFound) {
			return nil, fmt.Errorf("error loading user: %w", err)
		}
		if slotErr := s.withHashSlot(ctx, func() { _, _ = s.hasher.Verify(password, s.dummyHash) }); slotErr != nil {
			return nil, slotErr
		}
		return nil, s.reject(ctx, "login", auth.Unauthorized(fmt.Errorf("user %q: %w", username, err)))
	}

	var ok bool
	if slotErr := s.withHashSlot(ctx, func() { ok, err = s.hasher.Verify(password, user.PasswordHash) }); slotErr != nil {
		return nil, slotErr
	}
	if err != nil {
		s.logger.Error(ctx, "stored password hash is unreadable", "username", username, "error", err.Error())
		return nil, auth.Unauthorized(err)
	}
	if !ok {
		return nil, s.reject(ctx, "login", auth.Unauthorized(fmt.Errorf("user %q: password mismatch", username)))
	}

	token, err := s.tokens.Issue(user.UserName, s.tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("error issuing token: %w", err)
	}

	s.logger.Info(ctx, "user logged in", "username", username)
	return &AccessToken{Token: token, TokenType: common.TokenType, ExpiresIn: s.tokenTTL}, nil
}

// Authenticate resolves a bearer token to the stored user. Protected
// operations must call it before doing anything else.
func (s *UserService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	user, err := s.resolver.Resolve(ctx, token)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			return nil, s.reject(ctx, "authenticate", err)
		}
		return nil, err
	}
	return user, nil
}

// Unregister deletes the authenticated user. Tokens already issued to them
// stop resolving on the next request.
func (s *UserService) Unregister(ctx context.Context, user *models.User) error {
	if err := s.users.DeleteUser(ctx, user.UserName); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return s.reject(ctx, "unregister", auth.Unauthorized(err))
		}
		return fmt.Errorf("error deleting user: %w", err)
	}
	s.logger.Info(ctx, "user deleted", "username", user.UserName)
	return nil
}

func (s *UserService) reject(ctx context.Context, op string, err error) error {
	s.logger.Warn(ctx, "authentication rejected", "op", op, "reason", auth.Reason(err))
	return err
}

func (s *UserService) withHashSlot(ctx context.Context, fn func()) error {
	if err := s.hashPool.Acquire(ctx, 1); err != nil {
		return err
	}
	defer s.hashPool.Release(1)
	fn()
	return nil
}
