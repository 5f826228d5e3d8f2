package auth

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/paulrsmithjnr/firebase-user-password-reset/internal/models"
)

var (
	ErrCredentialsNotFound = eris.New("credentials file not found")
	ErrUserNotFound        = eris.New("user not found")
)

// ClientInterface is the surface of the identity platform the commands use.
type ClientInterface interface {
	// GetUser fetches the profile for the given UID. Returns
	// ErrUserNotFound when no such user exists.
	GetUser(ctx context.Context, uid string) (models.User, error)

	// UpdatePassword overwrites the user's password. Returns
	// ErrUserNotFound when no such user exists.
	UpdatePassword(ctx context.Context, uid, password string) error
}

// Interface guard.
var _ ClientInterface = (*Client)(nil)
