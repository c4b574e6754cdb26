package repomanager

import (
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/dmitrijs2005/petgate/internal/config"
	"github.com/dmitrijs2005/petgate/internal/repositories/pets"
	"github.com/dmitrijs2005/petgate/internal/repositories/users"
)

type DynamoManager struct {
	users users.Repository
	pets  pets.Repository
}

// NewDynamoManager builds the DynamoDB-backed repositories on a shared
// client. Client credentials come from the execution role.
func NewDynamoManager(client *dynamodb.Client, cfg *config.Config) *DynamoManager {
	return &DynamoManager{
		users: users.NewDynamoRepository(client, cfg.UsersTable),
		pets:  pets.NewDynamoRepository(client, cfg.PetsTable, cfg.ScanLimit),
	}
}

func (m *DynamoManager) Users() users.Repository {
	return m.users
}

func (m *DynamoManager) Pets() pets.Repository {
	return m.pets
}
