package cli

import (
	"flag"
	"fmt"
	"io"

	"github.com/dmitrijs2005/feastkeeper/internal/common"
	"github.com/dmitrijs2005/feastkeeper/internal/server/auth"
)

// hash prints a bcrypt hash of a password typed at the terminal.
func (a *App) hash(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("%w: hash takes no arguments", ErrUsage)
	}

	password, err := GetPassword(a.prompt)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	h, err := auth.NewHasher().HashBytes(password)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, h)
	return nil
}

// secret prints a random hex string suitable for SECRET_KEY.
func (a *App) secret(args []string) error {
	fs := flag.NewFlagSet("secret", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	size := fs.Int("n", 32, "number of random bytes")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if *size < 16 {
		return fmt.Errorf("%w: secret needs at least 16 bytes", ErrUsage)
	}

	s, err := common.MakeRandHexString(*size)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, s)
	return nil
}
