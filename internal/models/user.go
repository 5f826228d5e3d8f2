package models

// User is a read-only snapshot of a Firebase user profile. It is fetched
// fresh from the platform on each request and discarded after display.
type User struct {
	UID           string
	Email         string
	DisplayName   string
	Disabled      bool
	EmailVerified bool
}

// ResetPasswordFlags holds the resolved invocation parameters for the
// reset command.
type ResetPasswordFlags struct {
	UserID       string
	Password     string
	ShowUserInfo bool
	Confirm      bool
}

// ShowUserInfoFlags holds the resolved invocation parameters for the
// info command.
type ShowUserInfoFlags struct {
	UserID string
}
