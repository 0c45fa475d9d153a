package ports

import "context"

// ExportRequest carries everything one export needs: the deck source
// and optional overrides for the cover fields.
type ExportRequest struct {
	// Markdown is the raw deck source
	Markdown []byte

	// ImageBytes is the cover background PNG; may be empty
	ImageBytes []byte

	// Name overrides the frontmatter presenter name when non-empty
	Name string

	// Date overrides the frontmatter date line when non-empty
	Date string
}

// DeckExporter defines the interface the transport layers use to turn
// deck source into a finished presentation package
type DeckExporter interface {
	Export(ctx context.Context, req ExportRequest) ([]byte, error)
}
