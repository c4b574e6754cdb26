package actions

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/dmitrijs2005/petgate/internal/apperrors"
	"github.com/dmitrijs2005/petgate/internal/identity"
	"github.com/dmitrijs2005/petgate/internal/logging"
	"github.com/dmitrijs2005/petgate/internal/passhash"
	"github.com/dmitrijs2005/petgate/internal/repositories/users"

	"github.com/dmitrijs2005/petgate/internal/models"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	IdentityID  string                  `json:"identityId"`
	Token       string                  `json:"token"`
	Credentials *models.UserCredentials `json:"credentials"`
}

// LoginAction verifies a user's password and exchanges the local identity
// for a federated one plus temporary credentials.
//
// An unknown username and a wrong password produce the same BadRequest
// message, so responses cannot be used to enumerate accounts.
type LoginAction struct {
	users    users.Repository
	identity identity.Provider
	log      logging.Logger
}

func NewLoginAction(users users.Repository, identity identity.Provider, log logging.Logger) *LoginAction {
	return &LoginAction{users: users, identity: identity, log: log}
}

func (a *LoginAction) Handle(ctx context.Context, body json.RawMessage) (any, error) {
	input := &LoginRequest{}
	if err := decode(body, input); err != nil {
		return nil, apperrors.NewBadRequest(apperrors.MsgInvalidInput)
	}

	if strings.TrimSpace(input.Username) == "" || strings.TrimSpace(input.Password) == "" {
		return nil, apperrors.NewBadRequest(apperrors.MsgInvalidInput)
	}

	user, err := a.users.GetByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewBadRequest(apperrors.MsgInvalidInput)
		}
		a.log.Error(ctx, "error while loading user", "error", err)
		return nil, apperrors.NewInternalWrap(apperrors.MsgDataAccess, err)
	}

	if !passhash.Verify(input.Password, user.PasswordHash, user.Salt) {
		return nil, apperrors.NewBadRequest(apperrors.MsgInvalidInput)
	}

	id, err := a.identity.GetUserIdentity(ctx, user)
	if err != nil {
		a.log.Error(ctx, "error while retrieving federated identity", "error", err)
		return nil, apperrors.NewInternalWrap(apperrors.MsgNoIdentity, err)
	}
	user.Identity = id

	creds, err := a.identity.GetUserCredentials(ctx, user)
	if err != nil {
		a.log.Error(ctx, "error while retrieving credentials", "error", err)
		return nil, apperrors.NewInternalWrap(apperrors.MsgNoIdentity, err)
	}

	return &LoginResponse{
		IdentityID:  id.IdentityID,
		Token:       id.OpenIDToken,
		Credentials: creds,
	}, nil
}
