package cli

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/dmitrijs2005/feastkeeper/internal/common"
)

func (a *App) register(ctx context.Context, s Service, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	userName := fs.String("u", "", "user name")
	email := fs.String("e", "", "email")
	fullName := fs.String("n", "", "full name")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	name, err := a.textOrPrompt(*userName, "Enter user name")
	if err != nil {
		return err
	}
	mail, err := a.textOrPrompt(*email, "Enter email")
	if err != nil {
		return err
	}

	password, err := GetPassword(a.prompt)
	if err != nil {
		return err
	}
	// The request carries its own string copy; only the terminal buffer is wiped.
	defer common.WipeByteArray(password)

	u, err := s.Register(ctx, name, mail, string(password), *fullName)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "registered %s <%s>\n", u.Username, u.Email)
	return nil
}
