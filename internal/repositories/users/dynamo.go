package users

import (
	"context"
	"errors"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/dmitrijs2005/petgate/internal/apperrors"
	"github.com/dmitrijs2005/petgate/internal/models"
)

// dynamoAPI is the subset of the DynamoDB client used by this repository.
type dynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

type DynamoRepository struct {
	client dynamoAPI
	table  string
}

func NewDynamoRepository(client *dynamodb.Client, table string) *DynamoRepository {
	return &DynamoRepository{client: client, table: table}
}

// userRecord is the stored shape. The salt and hash are kept as binary
// attributes; identityId is absent until the first federation exchange.
type userRecord struct {
	Username     string `dynamodbav:"username"`
	PasswordHash []byte `dynamodbav:"passwordHash"`
	Salt         []byte `dynamodbav:"salt"`
	IdentityID   string `dynamodbav:"identityId,omitempty"`
}

func (r *DynamoRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if strings.TrimSpace(username) == "" {
		return nil, &apperrors.DataAccessError{Op: "cannot lookup null or empty user"}
	}

	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key: map[string]types.AttributeValue{
			"username": &types.AttributeValueMemberS{Value: username},
		},
	})
	if err != nil {
		return nil, &apperrors.DataAccessError{Op: "get user", Err: err}
	}
	if out.Item == nil {
		return nil, &apperrors.DataAccessError{Op: "get user", Err: apperrors.ErrNotFound}
	}

	rec := &userRecord{}
	if err := attributevalue.UnmarshalMap(out.Item, rec); err != nil {
		return nil, &apperrors.DataAccessError{Op: "decode user", Err: err}
	}

	user := &models.User{
		Username:     rec.Username,
		PasswordHash: rec.PasswordHash,
		Salt:         rec.Salt,
	}
	if rec.IdentityID != "" {
		user.Identity = &models.UserIdentity{IdentityID: rec.IdentityID}
	}
	return user, nil
}

// Create writes the user with a conditional put, making the table the
// final arbiter of username uniqueness even when two registrations race
// past the handler-level pre-check.
func (r *DynamoRepository) Create(ctx context.Context, user *models.User) (string, error) {
	if user == nil || strings.TrimSpace(user.Username) == "" {
		return "", &apperrors.DataAccessError{Op: "cannot create user with empty username"}
	}

	rec := &userRecord{
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		Salt:         user.Salt,
		IdentityID:   user.IdentityID(),
	}

	item, err := attributevalue.MarshalMap(rec)
	if err != nil {
		return "", &apperrors.DataAccessError{Op: "encode user", Err: err}
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.table),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(username)"),
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return "", &apperrors.DataAccessError{Op: "create user", Err: apperrors.ErrAlreadyExists}
		}
		return "", &apperrors.DataAccessError{Op: "create user", Err: err}
	}

	return user.Username, nil
}
