package actions

import (
	"context"

	"github.com/dmitrijs2005/petgate/internal/apperrors"
	"github.com/dmitrijs2005/petgate/internal/models"
)

// --- fakes shared by the action tests ---

type fakeUsersRepo struct {
	getOut *models.User
	getErr error

	createOut  string
	createErr  error
	createdIn  *models.User
	createCall int
}

func (f *fakeUsersRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeUsersRepo) Create(ctx context.Context, user *models.User) (string, error) {
	f.createCall++
	f.createdIn = user
	if f.createErr != nil {
		return "", f.createErr
	}
	if f.createOut != "" {
		return f.createOut, nil
	}
	return user.Username, nil
}

type fakePetsRepo struct {
	createOut string
	createErr error
	createdIn *models.Pet

	getOut *models.Pet
	getErr error

	listOut     []models.Pet
	listErr     error
	listLimitIn int
}

func (f *fakePetsRepo) Create(ctx context.Context, pet *models.Pet) (string, error) {
	f.createdIn = pet
	return f.createOut, f.createErr
}

func (f *fakePetsRepo) GetByID(ctx context.Context, id string) (*models.Pet, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakePetsRepo) List(ctx context.Context, limit int) ([]models.Pet, error) {
	f.listLimitIn = limit
	return f.listOut, f.listErr
}

type fakeIdentityProvider struct {
	identityOut *models.UserIdentity
	identityErr error

	credsOut  *models.UserCredentials
	credsErr  error
	credsUser *models.User
}

func (f *fakeIdentityProvider) GetUserIdentity(ctx context.Context, user *models.User) (*models.UserIdentity, error) {
	if f.identityErr != nil {
		return nil, f.identityErr
	}
	return f.identityOut, nil
}

func (f *fakeIdentityProvider) GetUserCredentials(ctx context.Context, user *models.User) (*models.UserCredentials, error) {
	f.credsUser = user
	if f.credsErr != nil {
		return nil, f.credsErr
	}
	return f.credsOut, nil
}

func notFoundErr() error {
	return &apperrors.DataAccessError{Op: "get", Err: apperrors.ErrNotFound}
}
