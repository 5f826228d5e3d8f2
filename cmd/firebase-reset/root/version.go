package root

import (
	"github.com/spf13/cobra"

	"github.com/paulrsmithjnr/firebase-user-password-reset/common/printer"
	"github.com/paulrsmithjnr/firebase-user-password-reset/tea/style"
)

// versionCmd prints the CLI version
// Usage: `firebase-reset version`
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the version of the CLI",
	Run: func(_ *cobra.Command, _ []string) {
		printer.Infoln("firebase-reset " + style.ForegroundPrint(AppVersion, "4"))
	},
}
