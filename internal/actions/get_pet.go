package actions

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/dmitrijs2005/petgate/internal/apperrors"
	"github.com/dmitrijs2005/petgate/internal/logging"
	"github.com/dmitrijs2005/petgate/internal/models"
	"github.com/dmitrijs2005/petgate/internal/repositories/pets"
)

type GetPetRequest struct {
	PetID string `json:"petId"`
}

// GetPetAction looks up a pet by id. An unknown id yields a JSON null
// body rather than an error.
type GetPetAction struct {
	pets pets.Repository
	log  logging.Logger
}

func NewGetPetAction(pets pets.Repository, log logging.Logger) *GetPetAction {
	return &GetPetAction{pets: pets, log: log}
}

func (a *GetPetAction) Handle(ctx context.Context, body json.RawMessage) (any, error) {
	input := &GetPetRequest{}
	if err := decode(body, input); err != nil {
		return nil, apperrors.NewBadRequest(apperrors.MsgInvalidInput)
	}

	if strings.TrimSpace(input.PetID) == "" {
		a.log.Warn(ctx, "invalid input passed to get-pet action")
		return nil, apperrors.NewBadRequest(apperrors.MsgInvalidInput)
	}

	pet, err := a.pets.GetByID(ctx, input.PetID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return (*models.Pet)(nil), nil
		}
		a.log.Error(ctx, "error while fetching pet", "petId", input.PetID, "error", err)
		return nil, apperrors.NewInternalWrap(apperrors.MsgDataAccess, err)
	}

	return pet, nil
}
