package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/deckforge/deckforge/internal/adapters/secondary/parser"
	"github.com/deckforge/deckforge/internal/adapters/secondary/pptx"
	"github.com/deckforge/deckforge/internal/domain/entities"
	"github.com/deckforge/deckforge/internal/domain/ports"
	"github.com/deckforge/deckforge/internal/domain/services"
)

var (
	exportOutput string
	exportImage  string
	exportName   string
	exportDate   string
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export a markdown deck to a PowerPoint package",
	Long: `Export reads a markdown deck file, synthesizes the presentation
package, and writes it next to the deck (or wherever -o points).

The cover image is resolved in order: the --image flag, the image field
in the deck frontmatter (relative to the deck file), then the configured
default. A missing image degrades to a plain cover rather than failing
the export.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file path (default: deck name with .pptx)")
	exportCmd.Flags().StringVar(&exportImage, "image", "", "Cover background PNG path")
	exportCmd.Flags().StringVar(&exportName, "name", "", "Presenter name for the cover slide")
	exportCmd.Flags().StringVar(&exportDate, "date", "", "Date line for the cover slide")
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	verbose, _ := cmd.Flags().GetBool("verbose")

	deckPath := args[0]
	deckDir := filepath.Dir(deckPath)

	cfg := loadConfig(ctx, deckDir, newLogger(verbose, entities.LogLevelWarn))
	logger := newLogger(verbose || cfg.Logging.Verbose, entities.LogLevel(cfg.Logging.Level))

	content, err := os.ReadFile(deckPath) // #nosec G304 - user-specified deck file
	if err != nil {
		return fmt.Errorf("reading deck file: %w", err)
	}

	service := services.NewDeckService(parser.NewDeckParser(), pptx.NewBuilder(), cfg.Cover)

	parsed, err := service.ParseDeck(ctx, content)
	if err != nil {
		return err
	}
	logger.Info("parsed %d slides from %s", parsed.Deck.SlideCount(), deckPath)

	imageBytes := loadCoverImage(logger, deckDir, parsed.ImagePath, cfg.Cover.ImagePath)

	archive, err := service.ExportParsed(ctx, parsed, ports.ExportRequest{
		ImageBytes: imageBytes,
		Name:       exportName,
		Date:       exportDate,
	})
	if err != nil {
		return err
	}

	outputPath := resolveOutputPath(deckPath, cfg.Output)
	if err := os.WriteFile(outputPath, archive, 0o600); err != nil {
		return fmt.Errorf("writing package: %w", err)
	}

	fmt.Printf("Exported %s (%d bytes)\n", outputPath, len(archive))
	return nil
}

// loadCoverImage resolves and reads the cover background. The --image
// flag wins over frontmatter, which wins over the configured default.
// Frontmatter paths are relative to the deck file. Any read failure
// degrades to no image.
func loadCoverImage(logger *Logger, deckDir, frontmatterPath, defaultPath string) []byte {
	var path string
	switch {
	case exportImage != "":
		path = exportImage
	case frontmatterPath != "":
		path = frontmatterPath
		if !filepath.IsAbs(path) {
			path = filepath.Join(deckDir, path)
		}
	case defaultPath != "":
		path = defaultPath
	default:
		return nil
	}

	data, err := os.ReadFile(path) // #nosec G304 - user-specified image file
	if err != nil {
		logger.Warn("cover image %s unavailable, exporting without it: %v", path, err)
		return nil
	}
	return data
}

// resolveOutputPath derives the output file path from the -o flag or
// the deck file name plus the configured directory and extension
func resolveOutputPath(deckPath string, output entities.OutputConfig) string {
	if exportOutput != "" {
		return exportOutput
	}

	ext := output.Extension
	if ext == "" {
		ext = ".pptx"
	}

	base := filepath.Base(deckPath)
	base = strings.TrimSuffix(base, filepath.Ext(base)) + ext

	dir := output.Directory
	if dir == "" {
		dir = filepath.Dir(deckPath)
	}
	return filepath.Join(dir, base)
}
