// Command server runs the ClauseCheck HTTP API.
//
// Configuration is read from CONFIG_PATH (fallback ./config.yaml) and
// environment variables.
package main

import (
	"context"
	"log"

	"github.com/minhvudev/clausecheck-backend/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("run: %v", err)
	}
}
