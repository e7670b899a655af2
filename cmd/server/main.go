// Command server runs the health journal HTTP API.
package main

import (
	"context"
	"log"

	"github.com/arjunbhatia/healthlog-backend/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("run: %v", err)
	}
}
