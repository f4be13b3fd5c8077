// Command crm runs the CRM API server and its maintenance tasks.
//
// @title                       CRM API
// @version                     1.0
// @description                 Multi-tenant CRM backend with token-based authentication.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "crm",
		Usage: "Multi-tenant CRM API",
		Commands: []*cli.Command{
			serveCmd(),
			seedCmd(),
		},
	}
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	if err := app.RunContext(ctx, os.Args); err != nil {
		log.Error().Err(err).Msg("Application failed")
		os.Exit(1)
	}
}
