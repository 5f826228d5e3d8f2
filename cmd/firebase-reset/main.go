package main

import (
	"os"

	"github.com/paulrsmithjnr/firebase-user-password-reset/cmd/firebase-reset/root"
	_ "github.com/paulrsmithjnr/firebase-user-password-reset/common/logger"
)

// This variable will be overridden by ldflags during build
// Example : go build -ldflags "-X main.AppVersion=1.0.0"
var AppVersion string

func init() {
	// Set default app version in case not provided by ldflags
	if AppVersion == "" {
		AppVersion = "dev"
	}
	root.AppVersion = AppVersion
}

func main() {
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
