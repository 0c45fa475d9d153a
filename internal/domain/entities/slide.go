package entities

import (
	"errors"
	"fmt"
	"strings"
)

// Layout identifies the body arrangement of a content slide
type Layout string

const (
	// LayoutTitle renders a title with an optional subtitle and no body boxes
	LayoutTitle Layout = "title"

	// LayoutTitleBody renders a title above a single full-width body box
	LayoutTitleBody Layout = "titleBody"

	// LayoutTwoColumn renders a title above two side-by-side body boxes
	LayoutTwoColumn Layout = "twoColumn"
)

// Valid reports whether the layout is one of the supported values
func (l Layout) Valid() bool {
	switch l {
	case LayoutTitle, LayoutTitleBody, LayoutTwoColumn:
		return true
	}
	return false
}

// Slide represents a single slide in a deck
type Slide struct {
	// ID is a unique identifier for the slide
	ID string `json:"id,omitempty"`

	// Title is the slide heading text
	Title string `json:"title"`

	// Body is the slide body text, newline-delimited
	Body string `json:"body"`

	// Layout selects the body arrangement; ignored for the cover slide
	Layout Layout `json:"layout"`

	// IsCover marks the deck's cover slide (always position 0)
	IsCover bool `json:"is_cover"`
}

// Validate ensures the slide satisfies the deck model invariants
func (s *Slide) Validate() error {
	if strings.TrimSpace(s.Title) == "" {
		return errors.New("slide title cannot be empty")
	}

	if !s.IsCover {
		if !s.Layout.Valid() {
			return fmt.Errorf("unknown layout %q", s.Layout)
		}
		if s.Layout != LayoutTitle && strings.TrimSpace(s.Body) == "" {
			return fmt.Errorf("layout %q requires body text", s.Layout)
		}
	}

	return nil
}

// BodyLines splits the body text on newlines, trims each line, and
// discards lines that are blank after trimming. When no lines survive
// but the trimmed body itself is non-empty, the whole trimmed body is
// returned as a single line.
func (s *Slide) BodyLines() []string {
	var lines []string
	for _, line := range strings.Split(s.Body, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}

	if len(lines) == 0 {
		if trimmed := strings.TrimSpace(s.Body); trimmed != "" {
			return []string{trimmed}
		}
		return nil
	}

	return lines
}

// SplitColumns divides the body lines for a two-column layout: the
// first ceil(n/2) lines go left, the remainder right.
func (s *Slide) SplitColumns() (left, right []string) {
	lines := s.BodyLines()
	half := (len(lines) + 1) / 2
	return lines[:half], lines[half:]
}
