package root

import (
	"github.com/spf13/cobra"

	"github.com/paulrsmithjnr/firebase-user-password-reset/common/logger"
	"github.com/paulrsmithjnr/firebase-user-password-reset/tea/style"
)

// AppVersion is set by main from ldflags.
var AppVersion string

func init() {
	// Enable case-insensitive commands
	cobra.EnableCaseInsensitive = true

	// Register groups
	rootCmd.AddGroup(&cobra.Group{ID: "Core", Title: "User Commands:"})

	// Register commands
	rootCmd.AddCommand(resetCmd, infoCmd, versionCmd)

	// Add --debug flag
	logger.AddLogFlag(resetCmd, infoCmd)
}

// rootCmd represents the base command
// Usage: `firebase-reset`
var rootCmd = &cobra.Command{
	Use:   "firebase-reset",
	Short: "Reset a Firebase user's password from the command line",
	Long: style.CLIHeader("Firebase Reset",
		"An administrative tool for resetting Firebase user passwords"),
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		logger.Errors(err)
	}
	// print log stack
	logger.PrintLogs()
	return err
}
