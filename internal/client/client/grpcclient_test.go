package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/feastkeeper/internal/api"
	"github.com/dmitrijs2005/feastkeeper/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// fakeAPI records requests and returns preset results.
type fakeAPI struct {
	lastRegister *api.RegisterRequest
	lastLogin    *api.LoginRequest
	lastAuth     []string
	hadDeadline  bool

	user    *api.User
	login   *api.LoginResponse
	deleted *api.DeleteAccountResponse
	ping    *api.PingResponse
	err     error
}

func (f *fakeAPI) record(ctx context.Context) {
	md, _ := metadata.FromOutgoingContext(ctx)
	f.lastAuth = md.Get(common.AuthorizationHeaderName)
	_, f.hadDeadline = ctx.Deadline()
}

func (f *fakeAPI) Register(ctx context.Context, in *api.RegisterRequest, _ ...grpc.CallOption) (*api.User, error) {
	f.record(ctx)
	f.lastRegister = in
	return f.user, f.err
}

func (f *fakeAPI) Login(ctx context.Context, in *api.LoginRequest, _ ...grpc.CallOption) (*api.LoginResponse, error) {
	f.record(ctx)
	f.lastLogin = in
	return f.login, f.err
}

func (f *fakeAPI) Me(ctx context.Context, _ *api.MeRequest, _ ...grpc.CallOption) (*api.User, error) {
	f.record(ctx)
	return f.user, f.err
}

func (f *fakeAPI) DeleteAccount(ctx context.Context, _ *api.DeleteAccountRequest, _ ...grpc.CallOption) (*api.DeleteAccountResponse, error) {
	f.record(ctx)
	return f.deleted, f.err
}

func (f *fakeAPI) Ping(ctx context.Context, _ *api.PingRequest, _ ...grpc.CallOption) (*api.PingResponse, error) {
	f.record(ctx)
	return f.ping, f.err
}

func newTestClient(f *fakeAPI) *GRPCClient {
	return &GRPCClient{client: f, timeout: time.Second}
}

func TestRegister_SendsRequest(t *testing.T) {
	f := &fakeAPI{user: &api.User{Username: "alice"}}
	c := newTestClient(f)

	u, err := c.Register(context.Background(), "alice", "a@x.io", "pw", "Alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, &api.RegisterRequest{Username: "alice", Email: "a@x.io", Password: "pw", FullName: "Alice"}, f.lastRegister)
	assert.True(t, f.hadDeadline)
	assert.Empty(t, f.lastAuth)
}

func TestLogin_ReturnsToken(t *testing.T) {
	f := &fakeAPI{login: &api.LoginResponse{AccessToken: "tok", TokenType: "bearer", ExpiresIn: 1800}}
	c := newTestClient(f)

	resp, err := c.Login(context.Background(), "alice", "pw")
	require.NoError(t, err)
	assert.Equal(t, "tok", resp.AccessToken)
	assert.Equal(t, &api.LoginRequest{Username: "alice", Password: "pw"}, f.lastLogin)
}

func TestProtectedCalls_AttachBearer(t *testing.T) {
	f := &fakeAPI{user: &api.User{Username: "alice"}, deleted: &api.DeleteAccountResponse{Username: "alice"}}
	c := newTestClient(f)

	_, err := c.Me(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, []string{"Bearer tok"}, f.lastAuth)

	name, err := c.DeleteAccount(context.Background(), "tok2")
	require.NoError(t, err)
	assert.Equal(t, "alice", name)
	assert.Equal(t, []string{"Bearer tok2"}, f.lastAuth)
}

func TestPing(t *testing.T) {
	c := newTestClient(&fakeAPI{ping: &api.PingResponse{Status: "OK"}})
	require.NoError(t, c.Ping(context.Background()))

	c = newTestClient(&fakeAPI{ping: &api.PingResponse{Status: "DEGRADED"}})
	assert.ErrorIs(t, c.Ping(context.Background()), ErrUnavailable)
}

func TestMapError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{"unavailable", status.Error(codes.Unavailable, "down"), ErrUnavailable},
		{"deadline", status.Error(codes.DeadlineExceeded, "slow"), ErrUnavailable},
		{"unauthenticated", status.Error(codes.Unauthenticated, "unauthorized"), ErrUnauthorized},
		{"exists", status.Error(codes.AlreadyExists, "user already exists"), ErrAlreadyExists},
		{"invalid", status.Error(codes.InvalidArgument, "email: must be a valid email address."), ErrInvalidArgument},
		{"internal", status.Error(codes.Internal, "internal error"), ErrServer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(&fakeAPI{err: tt.in})
			_, err := c.Login(context.Background(), "a", "b")
			assert.ErrorIs(t, err, tt.want)
		})
	}

	plain := errors.New("not a status")
	c := newTestClient(&fakeAPI{err: plain})
	_, err := c.Me(context.Background(), "t")
	assert.ErrorIs(t, err, plain)
}

func TestNewGRPCClient_Close(t *testing.T) {
	c, err := NewGRPCClient("127.0.0.1:1", 0)
	require.NoError(t, err)
	require.NoError(t, c.Close())

	assert.NoError(t, (&GRPCClient{}).Close())
}
