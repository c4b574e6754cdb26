package pets

import (
	"context"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/petgate/internal/apperrors"
	"github.com/dmitrijs2005/petgate/internal/models"
)

// dynamoAPI is the subset of the DynamoDB client used by this repository.
type dynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

type DynamoRepository struct {
	client    dynamoAPI
	table     string
	scanLimit int
}

func NewDynamoRepository(client *dynamodb.Client, table string, scanLimit int) *DynamoRepository {
	return &DynamoRepository{client: client, table: table, scanLimit: scanLimit}
}

type petRecord struct {
	ID   string `dynamodbav:"petId"`
	Type string `dynamodbav:"petType"`
	Name string `dynamodbav:"petName,omitempty"`
	Age  int    `dynamodbav:"petAge,omitempty"`
}

func (r *DynamoRepository) Create(ctx context.Context, pet *models.Pet) (string, error) {
	if pet == nil || strings.TrimSpace(pet.Type) == "" {
		return "", &apperrors.DataAccessError{Op: "cannot create pet with empty type"}
	}

	id := pet.ID
	if id == "" {
		id = uuid.NewString()
	}

	rec := &petRecord{ID: id, Type: pet.Type, Name: pet.Name, Age: pet.Age}

	item, err := attributevalue.MarshalMap(rec)
	if err != nil {
		return "", &apperrors.DataAccessError{Op: "encode pet", Err: err}
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      item,
	})
	if err != nil {
		return "", &apperrors.DataAccessError{Op: "create pet", Err: err}
	}

	return id, nil
}

func (r *DynamoRepository) GetByID(ctx context.Context, id string) (*models.Pet, error) {
	if strings.TrimSpace(id) == "" {
		return nil, &apperrors.DataAccessError{Op: "cannot lookup null or empty petId"}
	}

	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key: map[string]types.AttributeValue{
			"petId": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return nil, &apperrors.DataAccessError{Op: "get pet", Err: err}
	}
	if out.Item == nil {
		return nil, &apperrors.DataAccessError{Op: "get pet", Err: apperrors.ErrNotFound}
	}

	rec := &petRecord{}
	if err := attributevalue.UnmarshalMap(out.Item, rec); err != nil {
		return nil, &apperrors.DataAccessError{Op: "decode pet", Err: err}
	}

	return &models.Pet{ID: rec.ID, Type: rec.Type, Name: rec.Name, Age: rec.Age}, nil
}

func (r *DynamoRepository) List(ctx context.Context, limit int) ([]models.Pet, error) {
	if limit <= 0 || limit > r.scanLimit {
		limit = r.scanLimit
	}

	out, err := r.client.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.table),
		Limit:     aws.Int32(int32(limit)),
	})
	if err != nil {
		return nil, &apperrors.DataAccessError{Op: "list pets", Err: err}
	}

	recs := []petRecord{}
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &recs); err != nil {
		return nil, &apperrors.DataAccessError{Op: "decode pets", Err: err}
	}

	pets := make([]models.Pet, 0, len(recs))
	for _, rec := range recs {
		pets = append(pets, models.Pet{ID: rec.ID, Type: rec.Type, Name: rec.Name, Age: rec.Age})
	}
	return pets, nil
}
