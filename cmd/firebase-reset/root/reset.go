package root

import (
	"github.com/spf13/cobra"

	"github.com/paulrsmithjnr/firebase-user-password-reset/common/logger"
	"github.com/paulrsmithjnr/firebase-user-password-reset/common/printer"
	"github.com/paulrsmithjnr/firebase-user-password-reset/internal/commands/user"
	"github.com/paulrsmithjnr/firebase-user-password-reset/internal/models"
	"github.com/paulrsmithjnr/firebase-user-password-reset/internal/services/input"
)

// DefaultPassword is used when no -p flag is given.
const DefaultPassword = "password123"

const (
	flagUserID       = "user-id"
	flagCredentials  = "credentials"
	flagPassword     = "password"
	flagShowUserInfo = "show-user-info"
	flagConfirm      = "confirm"
)

// resetCmd overwrites a user's password
// Usage: `firebase-reset reset -u <uid> -c <credentials.json> [-p <password>]`
var resetCmd = &cobra.Command{
	Use:     "reset",
	Short:   "Reset a user's password",
	GroupID: "Core",
	Long: `Reset a Firebase user's password to the given value.

Authenticates with a service account credentials JSON file and issues an
unconditional password overwrite for the target user. With --show-user-info
the user's profile is printed first; if that lookup fails no update is issued.`,
	Example: `  firebase-reset reset -u user123 -c firebase-credentials.json
  firebase-reset reset --user-id user123 --credentials ./config/firebase-key.json --password newpass123`,
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
		password, err := cmd.Flags().GetString(flagPassword)
		if err != nil {
			return err
		}
		showUserInfo, err := cmd.Flags().GetBool(flagShowUserInfo)
		if err != nil {
			return err
		}
		confirm, err := cmd.Flags().GetBool(flagConfirm)
		if err != nil {
			return err
		}

		printer.Headerln("Firebase Password Reset Tool")
		printer.SectionDivider("=", 40)

		ctx := cmd.Context()
		client, err := initClient(ctx, credentialsPath)
		if err != nil {
			return err
		}

		inputService := input.NewService()
		handler := user.NewHandler(client, &inputService)
		return handler.ResetPassword(ctx, models.ResetPasswordFlags{
			UserID:       userID,
			Password:     password,
			ShowUserInfo: showUserInfo,
			Confirm:      confirm,
		})
	},
}

func init() {
	registerUserFlags(resetCmd)
	resetCmd.Flags().StringP(flagPassword, "p", DefaultPassword,
		"New password to set")
	resetCmd.Flags().Bool(flagShowUserInfo, false,
		"Display user information before resetting the password")
	resetCmd.Flags().Bool(flagConfirm, false,
		"Ask for confirmation before overwriting the password")
}

// registerUserFlags adds the flags shared by every user operation.
func registerUserFlags(cmd *cobra.Command) {
	cmd.Flags().StringP(flagUserID, "u", "",
		"Firebase user UID to operate on")
	cmd.Flags().StringP(flagCredentials, "c", "",
		"Path to the Firebase service account credentials JSON file")
	_ = cmd.MarkFlagRequired(flagUserID)
	_ = cmd.MarkFlagRequired(flagCredentials)
}
