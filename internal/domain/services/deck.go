package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/deckforge/deckforge/internal/domain/entities"
	"github.com/deckforge/deckforge/internal/domain/ports"
)

// ErrInvalidDeck wraps input-contract violations so transports can
// distinguish bad input from synthesis failures.
var ErrInvalidDeck = errors.New("invalid deck")

// DeckService implements the business logic for turning deck source
// into a presentation package
type DeckService struct {
	parser   ports.DeckParser
	builder  ports.PackageBuilder
	defaults entities.CoverDefaults
}

// NewDeckService creates a new deck service instance
func NewDeckService(parser ports.DeckParser, builder ports.PackageBuilder, defaults entities.CoverDefaults) *DeckService {
	return &DeckService{
		parser:   parser,
		builder:  builder,
		defaults: defaults,
	}
}

// ParseDeck parses deck source into a deck model without building it
func (s *DeckService) ParseDeck(ctx context.Context, content []byte) (*ports.ParsedDeck, error) {
	if len(content) == 0 {
		return nil, fmt.Errorf("%w: deck source cannot be empty", ErrInvalidDeck)
	}

	parsed, err := s.parser.Parse(ctx, content)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDeck, err)
	}

	return parsed, nil
}

// Export parses, validates, and builds a deck in one pass. Cover name
// and date fall back from request overrides to frontmatter values to
// configured defaults; the image bytes are used as supplied.
func (s *DeckService) Export(ctx context.Context, req ports.ExportRequest) ([]byte, error) {
	parsed, err := s.ParseDeck(ctx, req.Markdown)
	if err != nil {
		return nil, err
	}

	return s.ExportParsed(ctx, parsed, req)
}

// ExportParsed validates and builds an already-parsed deck. Callers that
// needed the parse result first, such as for frontmatter image
// resolution, hand it back here instead of paying for a second parse;
// req.Markdown is ignored.
func (s *DeckService) ExportParsed(ctx context.Context, parsed *ports.ParsedDeck, req ports.ExportRequest) ([]byte, error) {
	deck := parsed.Deck
	s.applyCoverFallbacks(deck, req)

	if err := deck.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDeck, err)
	}

	archive, err := s.builder.Build(ctx, deck)
	if err != nil {
		return nil, fmt.Errorf("building package: %w", err)
	}

	return archive, nil
}

func (s *DeckService) applyCoverFallbacks(deck *entities.Deck, req ports.ExportRequest) {
	if req.Name != "" {
		deck.Cover.Name = req.Name
	} else if deck.Cover.Name == "" {
		deck.Cover.Name = s.defaults.Name
	}

	if req.Date != "" {
		deck.Cover.Date = req.Date
	} else if deck.Cover.Date == "" {
		deck.Cover.Date = s.defaults.Date
	}

	if len(req.ImageBytes) > 0 {
		deck.Cover.ImageBytes = req.ImageBytes
	}
}
