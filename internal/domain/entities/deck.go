package entities

import (
	"errors"
	"fmt"
)

// CoverConfig carries the cover slide's name line, date line, and
// background image bytes. It is independent of any particular slide and
// is paired with the cover slide's title at render time.
type CoverConfig struct {
	// Name is the presenter name shown on the cover
	Name string `json:"name"`

	// Date is the free-form date line shown on the cover
	Date string `json:"date"`

	// ImageBytes holds the raw PNG background; may be empty
	ImageBytes []byte `json:"-"`
}

// Deck represents a complete slide deck ready for packaging
type Deck struct {
	// Title is the deck title
	Title string `json:"title"`

	// Slides contains all slides in order; index 0 is the cover
	Slides []Slide `json:"slides"`

	// Cover configures the cover slide rendering
	Cover CoverConfig `json:"cover"`
}

// Validate ensures the deck satisfies the model invariants: at least a
// cover and one content slide, the cover at position 0 and nowhere else,
// and every slide individually valid.
func (d *Deck) Validate() error {
	if len(d.Slides) == 0 {
		return errors.New("deck has no slides")
	}

	if len(d.Slides) < 2 {
		return errors.New("deck must have a cover and at least one content slide")
	}

	if !d.Slides[0].IsCover {
		return errors.New("first slide must be the cover")
	}

	for i, slide := range d.Slides {
		if i > 0 && slide.IsCover {
			return fmt.Errorf("slide %d: only the first slide may be the cover", i+1)
		}
		if err := slide.Validate(); err != nil {
			return fmt.Errorf("slide %d: %w", i+1, err)
		}
	}

	return nil
}

// SlideCount returns the total number of slides including the cover
func (d *Deck) SlideCount() int {
	return len(d.Slides)
}

// CoverSlide returns the cover slide, or nil for an empty deck
func (d *Deck) CoverSlide() *Slide {
	if len(d.Slides) == 0 {
		return nil
	}
	return &d.Slides[0]
}

// ContentSlides returns the slides after the cover
func (d *Deck) ContentSlides() []Slide {
	if len(d.Slides) < 2 {
		return nil
	}
	return d.Slides[1:]
}
