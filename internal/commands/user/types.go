package user

import (
	"context"

	"github.com/paulrsmithjnr/firebase-user-password-reset/internal/clients/auth"
	"github.com/paulrsmithjnr/firebase-user-password-reset/internal/models"
	"github.com/paulrsmithjnr/firebase-user-password-reset/internal/services/input"
)

// Interface guard.
var _ HandlerInterface = (*Handler)(nil)

type Handler struct {
	authClient   auth.ClientInterface
	inputService input.ServiceInterface
}

type HandlerInterface interface {
	ResetPassword(ctx context.Context, flags models.ResetPasswordFlags) error
	ShowInfo(ctx context.Context, flags models.ShowUserInfoFlags) (models.User, error)
}

func NewHandler(authClient auth.ClientInterface, inputService input.ServiceInterface) *Handler {
	return &Handler{
		authClient:   authClient,
		inputService: inputService,
	}
}
