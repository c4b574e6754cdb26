package actions

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/dmitrijs2005/petgate/internal/apperrors"
	"github.com/dmitrijs2005/petgate/internal/identity"
	"github.com/dmitrijs2005/petgate/internal/logging"
	"github.com/dmitrijs2005/petgate/internal/models"
	"github.com/dmitrijs2005/petgate/internal/passhash"
	"github.com/dmitrijs2005/petgate/internal/repositories/users"
)

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	IdentityID  string                  `json:"identityId"`
	Username    string                  `json:"username"`
	Token       string                  `json:"token"`
	Credentials *models.UserCredentials `json:"credentials,omitempty"`
}

// RegisterAction creates a new user: hashes the password, federates the
// username with the identity broker, persists the record, and finally
// tries to issue temporary credentials.
type RegisterAction struct {
	users    users.Repository
	identity identity.Provider
	log      logging.Logger
}

func NewRegisterAction(users users.Repository, identity identity.Provider, log logging.Logger) *RegisterAction {
	return &RegisterAction{users: users, identity: identity, log: log}
}

func (a *RegisterAction) Handle(ctx context.Context, body json.RawMessage) (any, error) {
	input := &RegisterRequest{}
	if err := decode(body, input); err != nil {
		return nil, apperrors.NewBadRequest(apperrors.MsgInvalidInput)
	}

	if strings.TrimSpace(input.Username) == "" || strings.TrimSpace(input.Password) == "" {
		a.log.Warn(ctx, "invalid input passed to register action")
		return nil, apperrors.NewBadRequest(apperrors.MsgInvalidInput)
	}

	salt, err := passhash.GenerateSalt()
	if err != nil {
		a.log.Error(ctx, "cannot generate password salt", "error", err)
		return nil, apperrors.NewInternalWrap(apperrors.MsgPasswordSalt, err)
	}

	newUser := &models.User{
		Username:     input.Username,
		PasswordHash: passhash.Derive(input.Password, salt),
		Salt:         salt,
	}

	// Pre-check for an existing username. Not atomic against a concurrent
	// registration of the same name; the store's conditional create is the
	// final arbiter and surfaces the race as ErrAlreadyExists below.
	_, err = a.users.GetByUsername(ctx, input.Username)
	switch {
	case err == nil:
		return nil, apperrors.NewBadRequest(apperrors.MsgUsernameTaken)
	case !errors.Is(err, apperrors.ErrNotFound):
		a.log.Error(ctx, "error while checking username", "error", err)
		return nil, apperrors.NewInternalWrap(apperrors.MsgDataAccess, err)
	}

	id, err := a.identity.GetUserIdentity(ctx, newUser)
	if err != nil {
		a.log.Error(ctx, "error while retrieving federated identity", "error", err)
		return nil, apperrors.NewInternalWrap(apperrors.MsgNoIdentity, err)
	}
	if id == nil || strings.TrimSpace(id.IdentityID) == "" {
		a.log.Error(ctx, "federated identity response has no identity id")
		return nil, apperrors.NewInternal(apperrors.MsgNoIdentity)
	}
	newUser.Identity = id

	if _, err := a.users.Create(ctx, newUser); err != nil {
		if errors.Is(err, apperrors.ErrAlreadyExists) {
			return nil, apperrors.NewBadRequest(apperrors.MsgUsernameTaken)
		}
		a.log.Error(ctx, "error while saving new user", "error", err)
		return nil, apperrors.NewInternalWrap(apperrors.MsgDataAccess, err)
	}

	output := &RegisterResponse{
		IdentityID: id.IdentityID,
		Username:   newUser.Username,
		Token:      id.OpenIDToken,
	}

	// Credentials are not mandatory: the user can log in again to retry,
	// but they must learn that registration itself succeeded.
	creds, err := a.identity.GetUserCredentials(ctx, newUser)
	if err != nil {
		a.log.Warn(ctx, "registered user without credentials", "username", newUser.Username, "error", err)
	} else {
		output.Credentials = creds
	}

	return output, nil
}
