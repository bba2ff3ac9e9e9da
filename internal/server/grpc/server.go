// Package grpc exposes UserService over gRPC: request handlers, the bearer
// token interceptor guarding protected methods and the health service.
package grpc

import (
	"context"
	"errors"
	"net"

	"github.com/dmitrijs2005/feastkeeper/internal/api"
	"github.com/dmitrijs2005/feastkeeper/internal/logging"
	"github.com/dmitrijs2005/feastkeeper/internal/server/models"
	"github.com/dmitrijs2005/feastkeeper/internal/server/services"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// UserService is the session facade the handlers call into.
type UserService interface {
	Register(ctx context.Context, username, email, password, fullName string) (*models.PublicUser, error)
	Login(ctx context.Context, username, password string) (*services.AccessToken, error)
	Authenticate(ctx context.Context, token string) (*models.User, error)
	Unregister(ctx context.Context, user *models.User) error
}

type GRPCServer struct {
	address string
	users   UserService
	logger  logging.Logger
	health  *health.Server
}

func NewGRPCServer(address string, l logging.Logger, us UserService) *GRPCServer {
	return &GRPCServer{
		address: address,
		logger:  l.With("module", "grpc_server"),
		users:   us,
		health:  health.NewServer(),
	}
}

// NewServer builds a grpc.Server with the interceptors, the auth service and
// the health service registered.
func (s *GRPCServer) NewServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor))
	api.RegisterAuthServiceServer(srv, s)
	healthpb.RegisterHealthServer(srv, s.health)
	return srv
}

// Run listens on the configured address until ctx is cancelled.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis and stops gracefully once ctx is done.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.NewServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(context.Background(), "Stopping gRPC server...")
		s.health.Shutdown()
		srv.GracefulStop()
	}()

	s.health.SetServingStatus(api.ServiceName, healthpb.HealthCheckResponse_SERVING)
	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil {
		// Stopping before Serve got going is still a clean shutdown.
		if errors.Is(err, grpc.ErrServerStopped) && ctx.Err() != nil {
			return nil
		}
		return err
	}
	return nil
}
