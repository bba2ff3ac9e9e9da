//go:build race

package auth

import "golang.org/x/crypto/bcrypt"

func passwordHashCost() int {
	// Race-enabled builds are slow enough already.
	return bcrypt.DefaultCost
}
