// Package users holds the user store: the interface the server core consumes
// and its SQL and in-memory implementations.
package users

import (
	"context"

	"github.com/dmitrijs2005/feastkeeper/internal/server/models"
)

// Repository is the external user store. Implementations decide atomicity;
// InsertUser is the final authority on username uniqueness.
type Repository interface {
	// GetUser fails with common.ErrorNotFound for unknown usernames.
	GetUser(ctx context.Context, username string) (*models.User, error)
	// InsertUser fails with common.ErrorConflict when the username is taken.
	// An empty ID is filled in.
	InsertUser(ctx context.Context, user *models.User) error
	// DeleteUser fails with common.ErrorNotFound for unknown usernames.
	DeleteUser(ctx context.Context, username string) error
}
