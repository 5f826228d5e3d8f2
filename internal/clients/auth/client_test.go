package auth_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/require"

	"github.com/paulrsmithjnr/firebase-user-password-reset/internal/clients/auth"
)

func TestNewClient_CredentialsFileMissing(t *testing.T) {
	t.Parallel()

	client, err := auth.NewClient(context.Background(), filepath.Join(t.TempDir(), "nope.json"))

	require.Error(t, err)
	require.True(t, eris.Is(err, auth.ErrCredentialsNotFound))
	require.Nil(t, client)
}

func TestNewClient_MalformedCredentials(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "credentials.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))

	client, err := auth.NewClient(context.Background(), path)

	require.Error(t, err)
	require.False(t, eris.Is(err, auth.ErrCredentialsNotFound))
	require.Nil(t, client)
}
