package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/cohesivestack/valgo"
	"github.com/joshjon/kit/config"
	"github.com/joshjon/kit/log"
	"github.com/urfave/cli/v2"

	"github.com/isshub/isshub/app"
	"github.com/isshub/isshub/internal/valgoutil"
	"github.com/isshub/isshub/logkey"
)

const serviceName = "isshub"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, os.Kill)
	defer cancel()

	cliApp := cli.NewApp()
	cliApp.Name = serviceName
	cliApp.Usage = "Validate and generate isshub domain entities"

	cliApp.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Value:   "",
			Usage:   "path to yaml config file (optional, env vars are also read)",
		},
	}

	logger := log.NewLogger()

	cliApp.Commands = []*cli.Command{
		{
			Name:  "validate",
			Usage: "validates namespaces from a yaml fixtures file",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "fixtures",
					Aliases: []string{"f"},
					Usage:   "[required] path to the yaml fixtures file",
				},
			},
			Action: func(c *cli.Context) error {
				fixturesPath := c.String("fixtures")
				exitOnInvalidFlags(c, valgo.Is(valgo.String(fixturesPath, "fixtures").Not().Blank()))

				cfg := loadConfig(c)
				logger = loggerFromConfig(cfg.Logger).With(logkey.Service, serviceName)

				f, err := os.Open(fixturesPath)
				if err != nil {
					return err
				}
				defer f.Close() //nolint:errcheck

				fixtures, err := app.DecodeNamespaceFixtures(f)
				if err != nil {
					return err
				}
				_, err = app.RunValidate(c.Context, logger, fixtures)
				return err
			},
		},
		{
			Name:  "fake",
			Usage: "writes random valid namespaces as json lines",
			Flags: []cli.Flag{
				&cli.IntFlag{Name: "count", Aliases: []string{"n"}, Usage: "number of namespaces (default from config)"},
				&cli.Uint64Flag{Name: "seed", Usage: "random seed, 0 for a random one"},
				&cli.StringFlag{Name: "kind", Aliases: []string{"k"}, Usage: "pin the namespace kind"},
			},
			Action: func(c *cli.Context) error {
				cfg := loadConfig(c)
				if c.IsSet("count") {
					cfg.Fake.Count = c.Int("count")
				}
				if c.IsSet("seed") {
					cfg.Fake.Seed = c.Uint64("seed")
				}
				if c.IsSet("kind") {
					cfg.Fake.Kind = c.String("kind")
				}
				exitOnInvalidFlags(c, cfg.Fake.Validation())

				logger = loggerFromConfig(cfg.Logger).With(logkey.Service, serviceName)
				return app.RunFake(c.Context, logger, os.Stdout, cfg.Fake)
			},
		},
	}

	if err := cliApp.RunContext(ctx, os.Args); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func loadConfig(c *cli.Context) app.Config {
	var cfg app.Config
	cfg.InitDefaults()
	config.Load(c.String("config"), &cfg)
	return cfg
}

func exitOnInvalidFlags(c *cli.Context, v *valgo.Validation) {
	if v.ToError() == nil {
		return
	}
	fmt.Fprintln(os.Stderr, "Flag errors:") //nolint:errcheck

	for _, msg := range valgoutil.Messages(v.ToError()) {
		fmt.Fprintf(os.Stderr, "  %s\n", msg) //nolint:errcheck
	}

	fmt.Fprintln(os.Stdout) //nolint:errcheck
	cli.ShowAppHelpAndExit(c, 1)
}

func loggerFromConfig(cfg app.LoggerConfig) log.Logger {
	level, ok := log.ParseLevel(cfg.Level)
	if !ok {
		level = slog.LevelInfo
	}
	opts := []log.LoggerOption{log.WithLevel(level)}
	if !cfg.Structured {
		opts = append(opts, log.WithDevelopment())
	}
	return log.NewLogger(opts...)
}
