package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/feastkeeper/internal/common"
	"github.com/dmitrijs2005/feastkeeper/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLookup struct {
	users map[string]*models.User
	err   error
	calls int
}

func (f *fakeLookup) GetUser(_ context.Context, username string) (*models.User, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.users[username]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return u, nil
}

func newResolverFixture(t *testing.T) (*Resolver, *Codec, *fakeLookup) {
	t.Helper()
	codec := NewCodec([]byte("resolver-secret"))
	lookup := &fakeLookup{users: map[string]*models.User{
		"alice": {ID: "1", UserName: "alice", Email: "a@x.com", PasswordHash: "$2a$..."},
	}}
	return NewResolver(codec, lookup), codec, lookup
}

func TestResolve_ValidToken(t *testing.T) {
	r, codec, lookup := newResolverFixture(t)

	tok, err := codec.Issue("alice", time.Minute)
	require.NoError(t, err)

	u, err := r.Resolve(context.Background(), tok)
	require.NoError(t, err)
	assert.Equal(t, "alice", u.UserName)

	_, err = r.Resolve(context.Background(), tok)
	require.NoError(t, err)
	assert.Equal(t, 2, lookup.calls, "every call must hit the store")
}

func TestResolve_CollapsesFailures(t *testing.T) {
	r, codec, lookup := newResolverFixture(t)

	expired, err := codec.Issue("alice", -time.Minute)
	require.NoError(t, err)
	foreign, err := NewCodec([]byte("other")).Issue("alice", time.Minute)
	require.NoError(t, err)
	ghost, err := codec.Issue("ghost", time.Minute)
	require.NoError(t, err)
	deleted, err := codec.Issue("alice", time.Minute)
	require.NoError(t, err)

	cases := []struct {
		name  string
		token string
		cause error
		setup func()
	}{
		{name: "malformed", token: "garbage", cause: common.ErrMalformedToken},
		{name: "expired", token: expired, cause: common.ErrTokenExpired},
		{name: "wrong signature", token: foreign, cause: common.ErrInvalidSignature},
		{name: "unknown user", token: ghost, cause: common.ErrorNotFound},
		{name: "deleted user", token: deleted, cause: common.ErrorNotFound, setup: func() { delete(lookup.users, "alice") }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.setup != nil {
				tc.setup()
			}
			u, err := r.Resolve(context.Background(), tc.token)
			assert.Nil(t, u)
			require.ErrorIs(t, err, common.ErrorUnauthorized)
			assert.Equal(t, "unauthorized", err.Error(), "message must not reveal the stage")
			assert.ErrorIs(t, err, tc.cause, "cause kept for logs")
		})
	}
}

func TestResolve_StoreFailureIsNotUnauthorized(t *testing.T) {
	r, codec, lookup := newResolverFixture(t)
	lookup.err = errors.New("connection refused")

	tok, err := codec.Issue("alice", time.Minute)
	require.NoError(t, err)

	_, err = r.Resolve(context.Background(), tok)
	require.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrorUnauthorized)
}

func TestReason(t *testing.T) {
	err := Unauthorized(common.ErrTokenExpired)
	assert.Equal(t, "token expired", Reason(err))
	assert.Equal(t, "", Reason(errors.New("plain")))
	assert.Equal(t, "", Reason(Unauthorized(nil)))
}
