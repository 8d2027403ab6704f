package main

import (
	"Chirp/config"
	"Chirp/pkg/database"
	"Chirp/pkg/log"
	"Chirp/pkg/server"
	"Chirp/pkg/snowflake"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	// .env 不存在时忽略
	_ = godotenv.Load()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}

	var cfg *config.Config
	cliApp := &cli.App{
		Name:  "api-server",
		Usage: "social backend http api",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "config file path",
				Value:   fmt.Sprintf("configs/config.%s.yaml", env),
			},
		},
		Before: func(ctx *cli.Context) error {
			conf, err := config.Load(ctx.String("config"))
			if err != nil {
				return err
			}
			if err := log.SetLevel(conf.Log.Level); err != nil {
				return err
			}
			if err := snowflake.Init(conf.Snowflake.Node); err != nil {
				return fmt.Errorf("snowflake node %d: %w", conf.Snowflake.Node, err)
			}
			cfg = conf
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start http server",
				Action: func(ctx *cli.Context) error {
					appProvider, cleanup, err := InitServer(cfg)
					if err != nil {
						return err
					}
					defer cleanup()
					return server.Run(ctx, appProvider)
				},
			},
			{
				Name:  "migrate",
				Usage: "create indexes or tables for the configured store",
				Action: func(ctx *cli.Context) error {
					backend, cleanup, err := database.NewBackend(cfg)
					if err != nil {
						return err
					}
					defer cleanup()

					start := time.Now()
					if err := backend.Migrate(ctx.Context); err != nil {
						return fmt.Errorf("migrate %s: %w", backend.Driver(), err)
					}
					log.L.Info("migrate finished", zap.String("driver", backend.Driver()), zap.Duration("cost", time.Since(start)))
					return nil
				},
			},
		},
	}
	if err := cliApp.Run(os.Args); err != nil {
		log.L.Fatal("failed to start server", zap.Error(err))
	}
}
