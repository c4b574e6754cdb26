package actions

import (
	"context"
	"encoding/json"

	"github.com/dmitrijs2005/petgate/internal/apperrors"
	"github.com/dmitrijs2005/petgate/internal/logging"
	"github.com/dmitrijs2005/petgate/internal/models"
	"github.com/dmitrijs2005/petgate/internal/repositories/pets"
)

type ListPetsRequest struct {
	Limit int `json:"limit"`
}

type ListPetsResponse struct {
	Count     int          `json:"count"`
	PageLimit int          `json:"pageLimit"`
	Pets      []models.Pet `json:"pets"`
}

// ListPetsAction returns a page of pets. The requested limit is clamped
// by the repository to the configured page limit.
type ListPetsAction struct {
	pets      pets.Repository
	pageLimit int
	log       logging.Logger
}

func NewListPetsAction(pets pets.Repository, pageLimit int, log logging.Logger) *ListPetsAction {
	return &ListPetsAction{pets: pets, pageLimit: pageLimit, log: log}
}

func (a *ListPetsAction) Handle(ctx context.Context, body json.RawMessage) (any, error) {
	input := &ListPetsRequest{}
	if err := decode(body, input); err != nil {
		return nil, apperrors.NewBadRequest(apperrors.MsgInvalidInput)
	}

	result, err := a.pets.List(ctx, input.Limit)
	if err != nil {
		a.log.Error(ctx, "error while listing pets", "error", err)
		return nil, apperrors.NewInternalWrap(apperrors.MsgDataAccess, err)
	}

	if result == nil {
		result = []models.Pet{}
	}

	return &ListPetsResponse{
		Count:     len(result),
		PageLimit: a.pageLimit,
		Pets:      result,
	}, nil
}
