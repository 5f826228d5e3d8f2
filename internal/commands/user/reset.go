package user

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/paulrsmithjnr/firebase-user-password-reset/common/printer"
	"github.com/paulrsmithjnr/firebase-user-password-reset/internal/clients/auth"
	"github.com/paulrsmithjnr/firebase-user-password-reset/internal/models"
	"github.com/paulrsmithjnr/firebase-user-password-reset/tea/style"
)

var ErrResetDeclined = eris.New("password reset declined")

// ResetPassword overwrites the target user's password. When ShowUserInfo is
// set the profile is fetched and printed first; a failed lookup aborts the
// run before any update call is issued. The run is non-interactive unless
// Confirm is set.
func (h *Handler) ResetPassword(ctx context.Context, flags models.ResetPasswordFlags) error {
	if flags.ShowUserInfo {
		if _, err := h.ShowInfo(ctx, models.ShowUserInfoFlags{UserID: flags.UserID}); err != nil {
			return err
		}
	}

	if flags.Confirm {
		confirmed, err := h.inputService.Confirm(ctx,
			"Overwrite the password for user "+flags.UserID+"? (y/n)", "n")
		if err != nil {
			return eris.Wrap(err, "Failed to read confirmation")
		}
		if !confirmed {
			printer.Infoln("Aborted.")
			return ErrResetDeclined
		}
	}

	printer.NewLine(1)
	printer.Infof("%sResetting password for user: %s\n", style.DoubleRightIcon, flags.UserID)

	if err := h.authClient.UpdatePassword(ctx, flags.UserID, flags.Password); err != nil {
		if eris.Is(err, auth.ErrUserNotFound) {
			printer.Errorf("User not found: %s\n", flags.UserID)
			return err
		}
		printer.Errorf("Error resetting password for user %s: %s\n", flags.UserID, err)
		return eris.Wrap(err, "Failed to reset password")
	}

	printer.Successf("Password successfully reset for user: %s\n", flags.UserID)
	printer.NewLine(1)
	printer.Successln("Password reset completed successfully!")
	printer.Infof("  New password: %s\n", flags.Password)
	return nil
}
