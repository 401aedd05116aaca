package main

import (
	"log/slog"
	"os"

	"github.com/ahmetcoskunkizilkaya/idcaller/internal/logging"
	"github.com/urfave/cli/v2"
)

func main() {
	// Structured logging (JSON to stdout)
	logging.Setup()

	app := &cli.App{
		Name:           "idcaller",
		Usage:          "Caller identification and spam lookup API",
		DefaultCommand: "serve",
		Commands: []*cli.Command{
			serveCmd(),
			migrateCmd(),
			seedCmd(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}
