package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/feastkeeper/internal/api"
	"github.com/dmitrijs2005/feastkeeper/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (s *GRPCServer) Register(ctx context.Context, req *api.RegisterRequest) (*api.User, error) {
	if err := req.Validate(); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	user, err := s.users.Register(ctx, req.Username, req.Email, req.Password, req.FullName)
	if err != nil {
		return nil, s.statusError(ctx, "register", err)
	}

	return &api.User{Username: user.UserName, Email: user.Email, FullName: user.FullName}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *api.LoginRequest) (*api.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	token, err := s.users.Login(ctx, req.Username, req.Password)
	if err != nil {
		return nil, s.statusError(ctx, "login", err)
	}

	return &api.LoginResponse{
		AccessToken: token.Token,
		TokenType:   token.TokenType,
		ExpiresIn:   int64(token.ExpiresIn.Seconds()),
	}, nil
}

func (s *GRPCServer) Me(ctx context.Context, _ *api.MeRequest) (*api.User, error) {
	user, ok := userFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "unauthorized")
	}
	return &api.User{Username: user.UserName, Email: user.Email, FullName: user.FullName}, nil
}

func (s *GRPCServer) DeleteAccount(ctx context.Context, _ *api.DeleteAccountRequest) (*api.DeleteAccountResponse, error) {
	user, ok := userFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "unauthorized")
	}
	if err := s.users.Unregister(ctx, user); err != nil {
		return nil, s.statusError(ctx, "delete_account", err)
	}
	return &api.DeleteAccountResponse{Username: user.UserName}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, _ *api.PingRequest) (*api.PingResponse, error) {
	return &api.PingResponse{Status: "OK"}, nil
}

// statusError maps service errors to client-facing statuses. Anything not
// explicitly mapped is logged and reported as a bare internal error.
func (s *GRPCServer) statusError(ctx context.Context, op string, err error) error {
	switch {
	case errors.Is(err, common.ErrorConflict):
		return status.Error(codes.AlreadyExists, "user already exists")
	case errors.Is(err, common.ErrorUnauthorized):
		return status.Error(codes.Unauthenticated, "unauthorized")
	case errors.Is(err, common.ErrorValidation), errors.Is(err, common.ErrEncoding):
		return status.Error(codes.InvalidArgument, "invalid argument")
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return status.FromContextError(err).Err()
	default:
		s.logger.Error(ctx, "request failed", "op", op, "error", err.Error(), "request_id", requestID(ctx))
		return status.Error(codes.Internal, "internal error")
	}
}
