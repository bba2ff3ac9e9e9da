package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"
)

// token resolves the bearer token for a protected command.
func (a *App) token(name string, args []string) (string, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	tok := fs.String("token", "", "access token (default $"+TokenEnv+")")
	if err := fs.Parse(args); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUsage, err)
	}

	t := strings.TrimSpace(*tok)
	if t == "" {
		t = strings.TrimSpace(a.getenv(TokenEnv))
	}
	if t == "" {
		return "", fmt.Errorf("%w: no token, pass -token or set %s", ErrUsage, TokenEnv)
	}
	return t, nil
}

func (a *App) me(ctx context.Context, s Service, args []string) error {
	t, err := a.token("me", args)
	if err != nil {
		return err
	}

	u, err := s.Me(ctx, t)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "username:  %s\nemail:     %s\n", u.Username, u.Email)
	if u.FullName != "" {
		fmt.Fprintf(a.out, "full name: %s\n", u.FullName)
	}
	return nil
}

func (a *App) delete(ctx context.Context, s Service, args []string) error {
	t, err := a.token("delete", args)
	if err != nil {
		return err
	}

	name, err := s.DeleteAccount(ctx, t)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "deleted %s\n", name)
	return nil
}

func (a *App) ping(ctx context.Context, s Service) error {
	if err := s.Ping(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "OK")
	return nil
}
