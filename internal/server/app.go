// Package server assembles the application: configuration, logging, the
// backing store, the identity provider, and the dispatcher. Everything is
// constructed exactly once at process start and reused by every
// invocation; there is no lazily initialized global state.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentity"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/dmitrijs2005/petgate/internal/actions"
	"github.com/dmitrijs2005/petgate/internal/config"
	"github.com/dmitrijs2005/petgate/internal/dispatch"
	"github.com/dmitrijs2005/petgate/internal/identity"
	"github.com/dmitrijs2005/petgate/internal/logging"
	"github.com/dmitrijs2005/petgate/internal/repositories/repomanager"
)

// Action names accepted in the request envelope. This is the complete,
// closed set; the dispatcher resolves nothing outside it.
const (
	ActionRegister  = "register"
	ActionLogin     = "login"
	ActionCreatePet = "pet.create"
	ActionGetPet    = "pet.get"
	ActionListPets  = "pet.list"
)

type App struct {
	config     *config.Config
	logger     logging.Logger
	dispatcher *dispatch.Dispatcher
}

// NewApp wires the collaborators and builds the dispatcher with the
// closed action table.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := logging.NewJSON(os.Stdout, cfg.LogLevel)

	var opts []func(*awsconfig.LoadOptions) error
	if cfg.AWSRegion != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.AWSRegion))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("aws config error: %w", err)
	}

	manager, err := repomanager.New(cfg, dynamodb.NewFromConfig(awsCfg))
	if err != nil {
		return nil, fmt.Errorf("store init error: %w", err)
	}

	provider := identity.NewCognitoProvider(
		cognitoidentity.NewFromConfig(awsCfg),
		cfg.IdentityPoolID,
		cfg.DeveloperProviderName,
	)

	return newApp(cfg, logger, manager, provider), nil
}

// newApp finishes assembly from already-built collaborators. Split out so
// tests can inject fakes.
func newApp(cfg *config.Config, logger logging.Logger, manager repomanager.Manager, provider identity.Provider) *App {
	handlers := map[string]actions.Handler{
		ActionRegister:  actions.NewRegisterAction(manager.Users(), provider, logger),
		ActionLogin:     actions.NewLoginAction(manager.Users(), provider, logger),
		ActionCreatePet: actions.NewCreatePetAction(manager.Pets(), logger),
		ActionGetPet:    actions.NewGetPetAction(manager.Pets(), logger),
		ActionListPets:  actions.NewListPetsAction(manager.Pets(), cfg.ScanLimit, logger),
	}

	return &App{
		config:     cfg,
		logger:     logger,
		dispatcher: dispatch.New(logger, handlers),
	}
}

// Invoke handles one request envelope. This is the single entry point the
// transport layer adapts to.
func (a *App) Invoke(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	return a.dispatcher.Handle(ctx, payload)
}

func (a *App) Logger() logging.Logger {
	return a.logger
}
