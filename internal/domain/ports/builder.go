package ports

import (
	"context"

	"github.com/deckforge/deckforge/internal/domain/entities"
)

// PackageBuilder defines the interface for synthesizing a deck into a
// presentation package byte buffer
type PackageBuilder interface {
	Build(ctx context.Context, deck *entities.Deck) ([]byte, error)
}
