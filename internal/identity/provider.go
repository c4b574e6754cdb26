// Package identity exchanges local user identities for federated ones and
// for temporary access credentials.
package identity

import (
	"context"

	"github.com/dmitrijs2005/petgate/internal/models"
)

// Provider is the identity-broker client used by the auth actions.
//
// GetUserIdentity must be called, and its result attached to the user,
// before GetUserCredentials: the OpenID token it returns is short-lived
// and single-use, never cached across exchanges.
type Provider interface {
	// GetUserIdentity requests a federated identity for the user's
	// username, reusing a previously assigned identity id when known.
	GetUserIdentity(ctx context.Context, user *models.User) (*models.UserIdentity, error)

	// GetUserCredentials exchanges the user's fresh OpenID token for
	// temporary access credentials.
	GetUserCredentials(ctx context.Context, user *models.User) (*models.UserCredentials, error)
}
