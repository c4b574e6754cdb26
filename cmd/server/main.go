// Local runner: reads one request envelope from stdin and writes the
// response to stdout, mirroring the stream shape of the Lambda handler.
// Useful for poking at the dispatcher without the Lambda runtime.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

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

	payload, err := io.ReadAll(os.Stdin)
	if err != nil {
		log.Fatalf("read error: %v", err)
	}

	resp, err := app.Invoke(ctx, payload)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println(string(resp))
}
