// Package builders provides fluent test-data builders for the domain
// entities. Tests use them to state only the fields they care about.
package builders

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/deckforge/deckforge/internal/domain/entities"
)

// DeckBuilder builds Deck instances for testing
type DeckBuilder struct {
	deck *entities.Deck
}

// NewDeckBuilder creates a deck with a cover and one content slide, the
// smallest shape that passes validation
func NewDeckBuilder() *DeckBuilder {
	return &DeckBuilder{
		deck: &entities.Deck{
			Title: "Test Deck",
			Slides: []entities.Slide{
				NewSlideBuilder().AsCover().WithTitle("Test Deck").Build(),
				NewSlideBuilder().WithTitle("First Topic").WithBody("A point").Build(),
			},
			Cover: entities.CoverConfig{
				Name: "Test Presenter",
				Date: "1 Jan 2026",
			},
		},
	}
}

// WithTitle sets the deck title and the cover slide heading
func (b *DeckBuilder) WithTitle(title string) *DeckBuilder {
	b.deck.Title = title
	b.deck.Slides[0].Title = title
	return b
}

// WithCover sets the cover name and date
func (b *DeckBuilder) WithCover(name, date string) *DeckBuilder {
	b.deck.Cover.Name = name
	b.deck.Cover.Date = date
	return b
}

// WithImage sets the cover background bytes
func (b *DeckBuilder) WithImage(data []byte) *DeckBuilder {
	b.deck.Cover.ImageBytes = data
	return b
}

// WithSlides replaces the content slides, keeping the cover
func (b *DeckBuilder) WithSlides(slides ...entities.Slide) *DeckBuilder {
	b.deck.Slides = append(b.deck.Slides[:1], slides...)
	return b
}

// WithContentSlides appends n generated content slides
func (b *DeckBuilder) WithContentSlides(n int) *DeckBuilder {
	for i := 0; i < n; i++ {
		b.deck.Slides = append(b.deck.Slides, NewSlideBuilder().
			WithTitle(fmt.Sprintf("Topic %d", i+1)).
			WithBody(fmt.Sprintf("Point %d", i+1)).
			Build())
	}
	return b
}

// Build returns the built deck
func (b *DeckBuilder) Build() *entities.Deck {
	return b.deck
}

// SlideBuilder builds Slide instances for testing
type SlideBuilder struct {
	slide entities.Slide
}

// NewSlideBuilder creates a valid titleBody slide
func NewSlideBuilder() *SlideBuilder {
	return &SlideBuilder{
		slide: entities.Slide{
			ID:     uuid.NewString(),
			Title:  "Test Slide",
			Body:   "Test body",
			Layout: entities.LayoutTitleBody,
		},
	}
}

// WithTitle sets the slide title
func (b *SlideBuilder) WithTitle(title string) *SlideBuilder {
	b.slide.Title = title
	return b
}

// WithBody sets the slide body
func (b *SlideBuilder) WithBody(body string) *SlideBuilder {
	b.slide.Body = body
	return b
}

// WithLayout sets the slide layout
func (b *SlideBuilder) WithLayout(layout entities.Layout) *SlideBuilder {
	b.slide.Layout = layout
	return b
}

// AsCover marks the slide as the cover and clears the body
func (b *SlideBuilder) AsCover() *SlideBuilder {
	b.slide.IsCover = true
	b.slide.Body = ""
	b.slide.Layout = entities.LayoutTitle
	return b
}

// Build returns the built slide
func (b *SlideBuilder) Build() entities.Slide {
	return b.slide
}
