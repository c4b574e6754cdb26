// Lambda entry point. The function receives the raw request envelope from
// the gateway mapping and returns the handler's JSON body; classified
// errors ("BAD_REQ: ..." / "INT_ERROR: ...") propagate for the gateway to
// pattern-match into status codes.
package main

import (
	"context"
	"encoding/json"
	"log"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/dmitrijs2005/petgate/internal/config"
	"github.com/dmitrijs2005/petgate/internal/server"
)

func main() {
	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := server.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("init error: %v", err)
	}

	lambda.Start(func(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
		return app.Invoke(ctx, payload)
	})
}
