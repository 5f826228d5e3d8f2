package root

import (
	"context"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/paulrsmithjnr/firebase-user-password-reset/common/logger"
	"github.com/paulrsmithjnr/firebase-user-password-reset/common/printer"
	"github.com/paulrsmithjnr/firebase-user-password-reset/internal/clients/auth"
	"github.com/paulrsmithjnr/firebase-user-password-reset/internal/commands/user"
	"github.com/paulrsmithjnr/firebase-user-password-reset/internal/models"
	"github.com/paulrsmithjnr/firebase-user-password-reset/internal/services/input"
)

// infoCmd displays a user's profile without modifying it
// Usage: `firebase-reset info -u <uid> -c <credentials.json>`
var infoCmd = &cobra.Command{
	Use:     "info",
	Short:   "Display a user's profile",
	GroupID: "Core",
	RunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetDebugMode(cmd)

		userID, err := cmd.Flags().GetString(flagUserID)
		if err != nil {
			return err
		}
		credentialsPath, err := cmd.Flags().GetString(flagCredentials)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		client, err := initClient(ctx, credentialsPath)
		if err != nil {
			return err
		}

		inputService := input.NewService()
		handler := user.NewHandler(client, &inputService)
		_, err = handler.ShowInfo(ctx, models.ShowUserInfoFlags{UserID: userID})
		return err
	},
}

func init() {
	registerUserFlags(infoCmd)
}

// initClient sets up the Firebase Admin SDK client, translating failures
// into user-facing messages.
func initClient(ctx context.Context, credentialsPath string) (*auth.Client, error) {
	client, err := auth.NewClient(ctx, credentialsPath)
	if err != nil {
		if eris.Is(err, auth.ErrCredentialsNotFound) {
			printer.Errorf("Credentials file not found: %s\n", credentialsPath)
		} else {
			printer.Errorf("Error initializing Firebase: %s\n", err)
		}
		return nil, err
	}
	printer.Successln("Firebase Admin SDK initialized successfully")
	return client, nil
}
