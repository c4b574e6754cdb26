package actions

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/dmitrijs2005/petgate/internal/apperrors"
	"github.com/dmitrijs2005/petgate/internal/logging"
	"github.com/dmitrijs2005/petgate/internal/models"
	"github.com/dmitrijs2005/petgate/internal/repositories/pets"
)

type CreatePetRequest struct {
	Type string `json:"petType"`
	Name string `json:"petName"`
	Age  int    `json:"petAge"`
}

type CreatePetResponse struct {
	PetID string `json:"petId"`
}

// CreatePetAction stores a new pet and returns its generated id.
type CreatePetAction struct {
	pets pets.Repository
	log  logging.Logger
}

func NewCreatePetAction(pets pets.Repository, log logging.Logger) *CreatePetAction {
	return &CreatePetAction{pets: pets, log: log}
}

func (a *CreatePetAction) Handle(ctx context.Context, body json.RawMessage) (any, error) {
	input := &CreatePetRequest{}
	if err := decode(body, input); err != nil {
		return nil, apperrors.NewBadRequest(apperrors.MsgInvalidInput)
	}

	if strings.TrimSpace(input.Type) == "" {
		return nil, apperrors.NewBadRequest(apperrors.MsgInvalidInput)
	}

	newPet := &models.Pet{
		Type: input.Type,
		Name: input.Name,
		Age:  input.Age,
	}

	petID, err := a.pets.Create(ctx, newPet)
	if err != nil {
		a.log.Error(ctx, "error while creating new pet", "error", err)
		return nil, apperrors.NewInternalWrap(apperrors.MsgDataAccess, err)
	}

	if strings.TrimSpace(petID) == "" {
		a.log.Error(ctx, "pet id is empty after create")
		return nil, apperrors.NewInternal(apperrors.MsgDataAccess)
	}

	return &CreatePetResponse{PetID: petID}, nil
}
