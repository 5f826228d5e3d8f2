package auth

import (
	"context"
	"os"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"github.com/rotisserie/eris"
	"google.golang.org/api/option"

	"github.com/paulrsmithjnr/firebase-user-password-reset/common/logger"
	"github.com/paulrsmithjnr/firebase-user-password-reset/internal/models"
)

// Client wraps the Firebase Admin SDK auth client.
type Client struct {
	auth *fbauth.Client
}

// NewClient initializes the Firebase Admin SDK from a service account
// credentials file. The file is checked for existence up front so a bad
// path is distinguishable from malformed credentials.
func NewClient(ctx context.Context, credentialsPath string) (*Client, error) {
	if _, err := os.Stat(credentialsPath); err != nil {
		return nil, eris.Wrap(ErrCredentialsNotFound, credentialsPath)
	}

	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, eris.Wrap(err, "Failed to initialize Firebase app")
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, eris.Wrap(err, "Failed to create Firebase auth client")
	}

	logger.DebugWithFields("Firebase Admin SDK initialized", map[string]interface{}{
		"credentials": credentialsPath,
	})

	return &Client{auth: authClient}, nil
}

func (c *Client) GetUser(ctx context.Context, uid string) (models.User, error) {
	record, err := c.auth.GetUser(ctx, uid)
	if err != nil {
		if fbauth.IsUserNotFound(err) {
			return models.User{}, eris.Wrap(ErrUserNotFound, uid)
		}
		return models.User{}, eris.Wrap(err, "Failed to get user")
	}

	return models.User{
		UID:           record.UID,
		Email:         record.Email,
		DisplayName:   record.DisplayName,
		Disabled:      record.Disabled,
		EmailVerified: record.EmailVerified,
	}, nil
}

// UpdatePassword is an unconditional overwrite; repeating it with the same
// value succeeds.
func (c *Client) UpdatePassword(ctx context.Context, uid, password string) error {
	params := (&fbauth.UserToUpdate{}).Password(password)
	if _, err := c.auth.UpdateUser(ctx, uid, params); err != nil {
		if fbauth.IsUserNotFound(err) {
			return eris.Wrap(ErrUserNotFound, uid)
		}
		return eris.Wrap(err, "Failed to update user password")
	}

	logger.DebugWithFields("password updated", map[string]interface{}{
		"uid": uid,
	})
	return nil
}
