package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/deckforge/deckforge/internal/adapters/secondary/config"
	"github.com/deckforge/deckforge/internal/domain/entities"
)

var (
	// Version is set during build
	Version = "dev"

	// BuildDate is set during build
	BuildDate = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "deckforge",
	Short: "A CLI tool for turning markdown decks into PowerPoint files",
	Long: `deckforge is a command-line tool that packages markdown slide decks
into standards-conformant PowerPoint (.pptx) files. The whole package -
the ZIP container and every XML part inside it - is synthesized
in-process, so the output opens in any conformant viewer without a
repair prompt.`,
	Version: Version,
}

func main() {
	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, shutting down...")
		cancel()
	}()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s" .Version}}
Build Date: ` + BuildDate + `
`)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
}

// Logger provides leveled logging for the CLI commands
type Logger struct {
	verbose bool
	level   entities.LogLevel
}

func newLogger(verbose bool, level entities.LogLevel) *Logger {
	if level == "" {
		level = entities.LogLevelInfo
	}
	return &Logger{verbose: verbose, level: level}
}

// shouldLog checks if the message should be logged based on level
func (l *Logger) shouldLog(msgLevel entities.LogLevel) bool {
	levelMap := map[entities.LogLevel]int{
		entities.LogLevelDebug: 0,
		entities.LogLevelInfo:  1,
		entities.LogLevelWarn:  2,
		entities.LogLevelError: 3,
	}
	return levelMap[msgLevel] >= levelMap[l.level]
}

// Info logs informational messages
func (l *Logger) Info(msg string, args ...interface{}) {
	if l.shouldLog(entities.LogLevelInfo) && l.verbose {
		log.Printf("[INFO] "+msg, args...)
	}
}

// Warn logs warning messages
func (l *Logger) Warn(msg string, args ...interface{}) {
	if l.shouldLog(entities.LogLevelWarn) {
		log.Printf("[WARN] "+msg, args...)
	}
}

// Error logs error messages
func (l *Logger) Error(msg string, args ...interface{}) {
	if l.shouldLog(entities.LogLevelError) {
		log.Printf("[ERROR] "+msg, args...)
	}
}

// loadConfig layers the global file, the local file from dir, and the
// built-in defaults. Config problems degrade to defaults with a warning
// rather than blocking an export.
func loadConfig(ctx context.Context, dir string, logger *Logger) *entities.Config {
	loader := config.NewTOMLLoader()

	global, err := loader.LoadGlobal(ctx)
	if err != nil {
		logger.Warn("loading global config: %v", err)
	}

	local, err := loader.LoadLocal(ctx, dir)
	if err != nil {
		logger.Warn("loading local config: %v", err)
	}

	return config.Merge(global, local)
}
