package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/feastkeeper/internal/api"
	"github.com/dmitrijs2005/feastkeeper/internal/client/client"
	"github.com/dmitrijs2005/feastkeeper/internal/client/config"
)

// TokenEnv names the environment variable protected commands read the access
// token from.
const TokenEnv = "FEASTKEEPER_TOKEN"

var ErrUsage = errors.New("usage")

// Service is the server API used by the commands.
type Service interface {
	Register(ctx context.Context, userName, email, password, fullName string) (*api.User, error)
	Login(ctx context.Context, userName, password string) (*api.LoginResponse, error)
	Me(ctx context.Context, token string) (*api.User, error)
	DeleteAccount(ctx context.Context, token string) (string, error)
	Ping(ctx context.Context) error
	Close() error
}

type App struct {
	config *config.Config
	dial   func(addr string, timeout time.Duration) (Service, error)
	reader *bufio.Reader
	out    io.Writer
	prompt io.Writer
	getenv func(string) string
}

func NewApp(c *config.Config) *App {
	return &App{
		config: c,
		dial: func(addr string, timeout time.Duration) (Service, error) {
			return client.NewGRPCClient(addr, timeout)
		},
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
		prompt: os.Stderr,
		getenv: os.Getenv,
	}
}

// Run executes the command named by args[0].
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.usage()
		return ErrUsage
	}

	cmd, rest := args[0], args[1:]

	switch cmd {
	case "hash":
		return a.hash(rest)
	case "secret":
		return a.secret(rest)
	case "register":
		return a.withService(func(s Service) error { return a.register(ctx, s, rest) })
	case "login":
		return a.withService(func(s Service) error { return a.login(ctx, s, rest) })
	case "me":
		return a.withService(func(s Service) error { return a.me(ctx, s, rest) })
	case "delete":
		return a.withService(func(s Service) error { return a.delete(ctx, s, rest) })
	case "ping":
		return a.withService(func(s Service) error { return a.ping(ctx, s) })
	case "help", "-h", "--help":
		a.usage()
		return nil
	default:
		a.usage()
		return fmt.Errorf("%w: unknown command %q", ErrUsage, cmd)
	}
}

func (a *App) withService(fn func(Service) error) error {
	s, err := a.dial(a.config.ServerEndpointAddr, a.config.RequestTimeout)
	if err != nil {
		return err
	}
	defer s.Close()
	return fn(s)
}

func (a *App) usage() {
	fmt.Fprintln(a.prompt, `usage: authctl [-a addr] [-t seconds] [-c config.json] <command> [flags]

commands:
  register [-u name] [-e email] [-n full name]
  login    [-u name]
  me       [-token token]
  delete   [-token token]
  ping
  hash     print a bcrypt hash of a password read from the terminal
  secret   [-n bytes] print a random hex signing secret`)
}
