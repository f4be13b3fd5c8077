package main

import (
	"github.com/urfave/cli/v2"

	mongodb "github.com/springcrm/crm-api/internal/infrastructure/db/mongo"
	"github.com/springcrm/crm-api/internal/infrastructure/security"
)

func seedCmd() *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "Create the ADMIN accounts listed in a YAML file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Aliases:  []string{"f"},
				Usage:    "YAML file with an `accounts` list of {email, password}",
				EnvVars:  []string{"SEED_FILE"},
				Required: true,
			},
		},
		Action: func(c *cli.Context) error {
			ctx := c.Context
			cfg, log, _, db, cleanup, err := bootstrap(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			accounts := mongodb.NewAccountRepository(db)
			if err := accounts.EnsureIndexes(ctx); err != nil {
				return err
			}
			return seedAdmins(ctx, c.String("file"), accounts, security.NewBcryptVerifier(cfg.Auth.BcryptCost), log)
		},
	}
}
