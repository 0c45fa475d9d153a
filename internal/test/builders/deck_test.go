package builders

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deckforge/deckforge/internal/domain/entities"
)

func TestNewDeckBuilder_DefaultIsValid(t *testing.T) {
	deck := NewDeckBuilder().Build()

	require.NoError(t, deck.Validate())
	assert.True(t, deck.Slides[0].IsCover)
	assert.Len(t, deck.ContentSlides(), 1)
}

func TestDeckBuilder_WithTitle(t *testing.T) {
	deck := NewDeckBuilder().WithTitle("Roadmap").Build()

	assert.Equal(t, "Roadmap", deck.Title)
	assert.Equal(t, "Roadmap", deck.Slides[0].Title)
}

func TestDeckBuilder_WithSlides(t *testing.T) {
	deck := NewDeckBuilder().WithSlides(
		NewSlideBuilder().WithTitle("Only").WithBody("one").Build(),
	).Build()

	require.NoError(t, deck.Validate())
	require.Len(t, deck.Slides, 2)
	assert.Equal(t, "Only", deck.Slides[1].Title)
}

func TestDeckBuilder_WithContentSlides(t *testing.T) {
	deck := NewDeckBuilder().WithContentSlides(3).Build()

	require.NoError(t, deck.Validate())
	assert.Equal(t, 5, deck.SlideCount())
}

func TestSlideBuilder(t *testing.T) {
	slide := NewSlideBuilder().
		WithTitle("Compare").
		WithBody("a\nb\nc").
		WithLayout(entities.LayoutTwoColumn).
		Build()

	require.NoError(t, slide.Validate())
	assert.NotEmpty(t, slide.ID)
	assert.Equal(t, entities.LayoutTwoColumn, slide.Layout)

	left, right := slide.SplitColumns()
	assert.Equal(t, []string{"a", "b"}, left)
	assert.Equal(t, []string{"c"}, right)
}

func TestSlideBuilder_AsCover(t *testing.T) {
	slide := NewSlideBuilder().AsCover().Build()

	assert.True(t, slide.IsCover)
	assert.Empty(t, slide.Body)
	require.NoError(t, slide.Validate())
}
