package pptx

import (
	"bytes"
	"context"
	"fmt"

	"github.com/deckforge/deckforge/internal/adapters/secondary/zipstore"
	"github.com/deckforge/deckforge/internal/domain/entities"
)

// MIMEType is the Open Packaging Convention presentation content type;
// consumers write the returned buffer verbatim to a .pptx file.
const MIMEType = "application/vnd.openxmlformats-officedocument.presentationml.presentation"

// BuildErrorType categorizes package build failures
type BuildErrorType string

const (
	ErrorTypeValidation BuildErrorType = "validation"
	ErrorTypeImage      BuildErrorType = "image"
	ErrorTypeArchive    BuildErrorType = "archive"
)

// BuildError provides categorized error information for build failures
type BuildError struct {
	Type    BuildErrorType
	Message string
	Cause   error
}

func (e *BuildError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s error: %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s error: %s", e.Type, e.Message)
}

func (e *BuildError) Unwrap() error {
	return e.Cause
}

// PackagePart couples an archive-relative path with its rendered bytes.
// Parts are built fresh per call and never cached.
type PackagePart struct {
	Path string
	Data []byte
}

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n'}

// Builder assembles a validated deck into a complete presentation
// package: every XML part rendered and sized to the deck's slide count,
// the cover image embedded raw, and the whole part list handed to the
// store-only archive writer. The same deck always produces the same
// bytes.
type Builder struct{}

// NewBuilder creates a new package builder
func NewBuilder() *Builder {
	return &Builder{}
}

// Build synthesizes the deck into a presentation package. The deck is
// read only; the returned buffer is owned by the caller. Empty cover
// image bytes degrade to a zero-length image part rather than an error,
// but non-empty bytes must carry a PNG signature.
func (b *Builder) Build(ctx context.Context, deck *entities.Deck) ([]byte, error) {
	if deck == nil || len(deck.Slides) == 0 {
		return nil, &BuildError{Type: ErrorTypeValidation, Message: "deck has no slides"}
	}
	if !deck.Slides[0].IsCover {
		return nil, &BuildError{Type: ErrorTypeValidation, Message: "first slide must be the cover"}
	}
	if len(deck.Cover.ImageBytes) > 0 && !bytes.HasPrefix(deck.Cover.ImageBytes, pngSignature) {
		return nil, &BuildError{Type: ErrorTypeImage, Message: "cover image is not a PNG"}
	}

	slideCount := deck.SlideCount()
	cover := deck.CoverSlide()

	parts := []PackagePart{
		{Path: "[Content_Types].xml", Data: []byte(renderContentTypes(slideCount))},
		{Path: "_rels/.rels", Data: []byte(renderPackageRels())},
		{Path: "ppt/presentation.xml", Data: []byte(renderPresentation(slideCount))},
		{Path: "ppt/_rels/presentation.xml.rels", Data: []byte(renderPresentationRels(slideCount))},
		{Path: "ppt/theme/theme1.xml", Data: []byte(themePart)},
		{Path: "ppt/slideMasters/slideMaster1.xml", Data: []byte(slideMasterPart)},
		{Path: "ppt/slideMasters/_rels/slideMaster1.xml.rels", Data: []byte(renderMasterRels())},
		{Path: "ppt/slideLayouts/slideLayout1.xml", Data: []byte(slideLayoutPart)},
		{Path: "ppt/slideLayouts/_rels/slideLayout1.xml.rels", Data: []byte(renderLayoutRels())},
		{Path: "ppt/media/cover.png", Data: deck.Cover.ImageBytes},
		{Path: "ppt/slides/slide1.xml", Data: []byte(renderCoverSlide(cover.Title, deck.Cover.Name, deck.Cover.Date))},
		{Path: "ppt/slides/_rels/slide1.xml.rels", Data: []byte(renderSlideRels(true))},
	}

	for i, slide := range deck.ContentSlides() {
		number := i + 2 // cover is always archive slide 1
		parts = append(parts,
			PackagePart{
				Path: fmt.Sprintf("ppt/slides/slide%d.xml", number),
				Data: []byte(renderContentSlide(&slide)),
			},
			PackagePart{
				Path: fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", number),
				Data: []byte(renderSlideRels(false)),
			},
		)
	}

	entries := make([]zipstore.Entry, len(parts))
	for i, part := range parts {
		entries[i] = zipstore.Entry{Name: part.Path, Data: part.Data}
	}

	archive, err := zipstore.Write(entries)
	if err != nil {
		return nil, &BuildError{Type: ErrorTypeArchive, Message: "writing archive", Cause: err}
	}

	return archive, nil
}
