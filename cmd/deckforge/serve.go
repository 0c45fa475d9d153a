package main

import (
	"os"

	"github.com/spf13/cobra"

	httpadapter "github.com/deckforge/deckforge/internal/adapters/primary/http"
	"github.com/deckforge/deckforge/internal/adapters/secondary/parser"
	"github.com/deckforge/deckforge/internal/adapters/secondary/pptx"
	"github.com/deckforge/deckforge/internal/domain/entities"
	"github.com/deckforge/deckforge/internal/domain/services"
)

var (
	serveHost string
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the deck export HTTP API",
	Long: `Serve starts an HTTP server exposing the export pipeline:

  POST /api/export  multipart deck upload, responds with the .pptx
  GET  /api/health  liveness check

The server runs until interrupted and then shuts down gracefully.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveHost, "host", "", "Host to bind (default from config)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to bind (default from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	verbose, _ := cmd.Flags().GetBool("verbose")

	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	cfg := loadConfig(ctx, cwd, newLogger(verbose, entities.LogLevelWarn))

	if serveHost != "" {
		cfg.Server.Host = serveHost
	}
	if servePort != 0 {
		cfg.Server.Port = servePort
	}

	service := services.NewDeckService(parser.NewDeckParser(), pptx.NewBuilder(), cfg.Cover)

	level := entities.LogLevel(cfg.Logging.Level)
	if verbose || cfg.Logging.Verbose {
		level = entities.LogLevelDebug
	}

	server := httpadapter.NewServer(service, &cfg.Server, level)
	return server.Start(ctx)
}
