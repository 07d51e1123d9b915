package auth

import (
	"context"

	"github.com/munimapp/munim/internal/models"
)

// Authenticator defines the interface for authentication
// implementations, so the service layer does not care whether
// credentials are passwords, passkeys, or OAuth tokens.
type Authenticator interface {
	// Register creates a new user account with the given credential.
	Register(ctx context.Context, email, displayName, credential string) (*models.User, error)

	// Authenticate verifies the credentials and returns the user if
	// they are valid.
	Authenticate(ctx context.Context, email, credential string) (*models.User, error)
}
