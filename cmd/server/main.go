// Command server runs the Science Yorùbá content API.
//
// Configuration is read from CONFIG_PATH (default ./config.yaml) and the
// environment. The process exits non-zero when the database cannot be
// reached or migrations fail.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/yoruba-science-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
