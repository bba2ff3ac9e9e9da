package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/feastkeeper/internal/common"
)

// login prints the access token alone on stdout.
func (a *App) login(ctx context.Context, s Service, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	userName := fs.String("u", "", "user name")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	name, err := a.textOrPrompt(*userName, "Enter user name")
	if err != nil {
		return err
	}

	password, err := GetPassword(a.prompt)
	if err != nil {
		return err
	}
	// The request carries its own string copy; only the terminal buffer is wiped.
	defer common.WipeByteArray(password)

	resp, err := s.Login(ctx, name, string(password))
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, resp.AccessToken)
	fmt.Fprintf(a.prompt, "%s token, expires in %s\n", resp.TokenType, time.Duration(resp.ExpiresIn)*time.Second)
	return nil
}
