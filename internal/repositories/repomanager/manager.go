// Package repomanager wires the backing store behind the repository
// interfaces. The default backing is DynamoDB; configuring a database DSN
// selects the PostgreSQL backing instead, and a memory backing exists for
// local runs and tests.
package repomanager

import (
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/dmitrijs2005/petgate/internal/config"
	"github.com/dmitrijs2005/petgate/internal/repositories/pets"
	"github.com/dmitrijs2005/petgate/internal/repositories/users"
)

// Manager hands out the shared repository instances. It is constructed
// once at process start and reused by every invocation.
type Manager interface {
	Users() users.Repository
	Pets() pets.Repository
}

// New selects the backing store from config: PostgreSQL when a DSN is
// set, DynamoDB otherwise.
func New(cfg *config.Config, ddb *dynamodb.Client) (Manager, error) {
	if cfg.DatabaseDSN != "" {
		return NewPostgresManager(cfg.DatabaseDSN, cfg.ScanLimit)
	}
	return NewDynamoManager(ddb, cfg), nil
}
