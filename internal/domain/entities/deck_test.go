package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDeck() *Deck {
	return &Deck{
		Title: "Q4 Review",
		Slides: []Slide{
			{Title: "Q4 Review", IsCover: true},
			{Title: "Agenda", Body: "A\nB", Layout: LayoutTitleBody},
		},
		Cover: CoverConfig{Name: "Jane", Date: "1 Jan"},
	}
}

func TestDeck_Validate(t *testing.T) {
	t.Run("valid deck", func(t *testing.T) {
		assert.NoError(t, validDeck().Validate())
	})

	t.Run("no slides", func(t *testing.T) {
		deck := &Deck{Title: "Empty"}
		require.Error(t, deck.Validate())
		assert.Contains(t, deck.Validate().Error(), "no slides")
	})

	t.Run("cover only", func(t *testing.T) {
		deck := validDeck()
		deck.Slides = deck.Slides[:1]
		require.Error(t, deck.Validate())
		assert.Contains(t, deck.Validate().Error(), "at least one content slide")
	})

	t.Run("first slide not cover", func(t *testing.T) {
		deck := validDeck()
		deck.Slides[0].IsCover = false
		deck.Slides[0].Layout = LayoutTitle
		require.Error(t, deck.Validate())
		assert.Contains(t, deck.Validate().Error(), "first slide must be the cover")
	})

	t.Run("second cover rejected", func(t *testing.T) {
		deck := validDeck()
		deck.Slides[1].IsCover = true
		require.Error(t, deck.Validate())
		assert.Contains(t, deck.Validate().Error(), "only the first slide may be the cover")
	})

	t.Run("invalid content slide reported with position", func(t *testing.T) {
		deck := validDeck()
		deck.Slides[1].Title = ""
		err := deck.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "slide 2:")
	})
}

func TestDeck_Accessors(t *testing.T) {
	deck := validDeck()

	assert.Equal(t, 2, deck.SlideCount())

	cover := deck.CoverSlide()
	require.NotNil(t, cover)
	assert.True(t, cover.IsCover)

	content := deck.ContentSlides()
	require.Len(t, content, 1)
	assert.Equal(t, "Agenda", content[0].Title)

	empty := &Deck{}
	assert.Nil(t, empty.CoverSlide())
	assert.Nil(t, empty.ContentSlides())
}
