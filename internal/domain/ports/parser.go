package ports

import (
	"context"

	"github.com/deckforge/deckforge/internal/domain/entities"
)

// DeckParser defines the interface for parsing deck source files
type DeckParser interface {
	Parse(ctx context.Context, content []byte) (*ParsedDeck, error)
}

// ParsedDeck is the result of parsing a deck source file
type ParsedDeck struct {
	// Deck is the parsed deck model; cover image bytes are not yet loaded
	Deck *entities.Deck

	// ImagePath is the cover image path from the frontmatter, relative
	// to the deck file; empty when none was declared
	ImagePath string
}
