package user

import (
	"context"
	"strconv"

	"github.com/rotisserie/eris"

	"github.com/paulrsmithjnr/firebase-user-password-reset/common/printer"
	"github.com/paulrsmithjnr/firebase-user-password-reset/internal/clients/auth"
	"github.com/paulrsmithjnr/firebase-user-password-reset/internal/models"
	"github.com/paulrsmithjnr/firebase-user-password-reset/tea/style"
)

// ShowInfo fetches and prints the target user's profile.
func (h *Handler) ShowInfo(ctx context.Context, flags models.ShowUserInfoFlags) (models.User, error) {
	printer.NewLine(1)
	printer.Infof("Getting user information for: %s\n", flags.UserID)

	user, err := h.authClient.GetUser(ctx, flags.UserID)
	if err != nil {
		if eris.Is(err, auth.ErrUserNotFound) {
			printer.Errorf("User %s not found\n", flags.UserID)
			return models.User{}, err
		}
		printer.Errorf("Error getting user info: %s\n", err)
		return models.User{}, eris.Wrap(err, "Failed to get user info")
	}

	printUserField("Email", user.Email)
	printUserField("Display Name", user.DisplayName)
	printUserField("Email Verified", strconv.FormatBool(user.EmailVerified))
	printUserField("Account Disabled", strconv.FormatBool(user.Disabled))
	return user, nil
}

func printUserField(name, value string) {
	printer.Infof("  %s%s: %s\n", style.ChevronIcon, name, value)
}
