package pptx

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deckforge/deckforge/internal/domain/entities"
	"github.com/deckforge/deckforge/internal/test/builders"
)

func testDeck(contentSlides ...entities.Slide) *entities.Deck {
	return builders.NewDeckBuilder().
		WithTitle("Q4 Review").
		WithCover("Jane", "1 Jan").
		WithSlides(contentSlides...).
		Build()
}

func readArchive(t *testing.T, archive []byte) map[string]string {
	t.Helper()

	reader, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	require.NoError(t, err)

	files := make(map[string]string, len(reader.File))
	for _, file := range reader.File {
		rc, err := file.Open()
		require.NoError(t, err)
		content, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		files[file.Name] = string(content)
	}
	return files
}

func TestBuilder_SlideNumbering(t *testing.T) {
	deck := testDeck(
		entities.Slide{Title: "One", Body: "a", Layout: entities.LayoutTitleBody},
		entities.Slide{Title: "Two", Body: "b", Layout: entities.LayoutTitleBody},
		entities.Slide{Title: "Three", Body: "c", Layout: entities.LayoutTitleBody},
	)

	archive, err := NewBuilder().Build(context.Background(), deck)
	require.NoError(t, err)

	files := readArchive(t, archive)

	// Cover is always archive slide 1; content slides follow in order.
	for _, path := range []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"ppt/presentation.xml",
		"ppt/_rels/presentation.xml.rels",
		"ppt/theme/theme1.xml",
		"ppt/slideMasters/slideMaster1.xml",
		"ppt/slideMasters/_rels/slideMaster1.xml.rels",
		"ppt/slideLayouts/slideLayout1.xml",
		"ppt/slideLayouts/_rels/slideLayout1.xml.rels",
		"ppt/media/cover.png",
		"ppt/slides/slide1.xml",
		"ppt/slides/_rels/slide1.xml.rels",
		"ppt/slides/slide2.xml",
		"ppt/slides/_rels/slide2.xml.rels",
		"ppt/slides/slide3.xml",
		"ppt/slides/_rels/slide3.xml.rels",
		"ppt/slides/slide4.xml",
		"ppt/slides/_rels/slide4.xml.rels",
	} {
		assert.Contains(t, files, path)
	}

	assert.NotContains(t, files, "ppt/slides/slide5.xml")
	assert.Contains(t, files["ppt/slides/slide2.xml"], "<a:t>One</a:t>")
	assert.Contains(t, files["ppt/slides/slide4.xml"], "<a:t>Three</a:t>")
}

func TestBuilder_Scenario(t *testing.T) {
	deck := testDeck(entities.Slide{
		Title:  "Agenda",
		Body:   "A\nB",
		Layout: entities.LayoutTitleBody,
	})

	archive, err := NewBuilder().Build(context.Background(), deck)
	require.NoError(t, err)

	files := readArchive(t, archive)

	var slideParts int
	for name := range files {
		if strings.HasPrefix(name, "ppt/slides/slide") && !strings.Contains(name, "_rels") {
			slideParts++
		}
	}
	assert.Equal(t, 2, slideParts)

	cover := files["ppt/slides/slide1.xml"]
	assert.Contains(t, cover, "<a:t>Q4 Review</a:t>")
	assert.Contains(t, cover, "<a:t>Name : Jane</a:t>")
	assert.Contains(t, cover, "<a:t>Date : 1 Jan</a:t>")

	content := files["ppt/slides/slide2.xml"]
	assert.Contains(t, content, "<a:t>Agenda</a:t>")
	assert.Contains(t, content, "<a:t>A</a:t>")
	assert.Contains(t, content, "<a:t>B</a:t>")
}

func TestBuilder_Deterministic(t *testing.T) {
	deck := testDeck(entities.Slide{Title: "One", Body: "a", Layout: entities.LayoutTitleBody})

	first, err := NewBuilder().Build(context.Background(), deck)
	require.NoError(t, err)
	second, err := NewBuilder().Build(context.Background(), deck)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBuilder_AllXMLPartsWellFormed(t *testing.T) {
	deck := testDeck(
		entities.Slide{Title: `specials <"&'>`, Body: "x < y\ny > z", Layout: entities.LayoutTwoColumn},
	)
	deck.Cover.Name = `Jane & "co"`

	archive, err := NewBuilder().Build(context.Background(), deck)
	require.NoError(t, err)

	for name, content := range readArchive(t, archive) {
		if !strings.HasSuffix(name, ".xml") && !strings.HasSuffix(name, ".rels") {
			continue
		}
		decoder := xml.NewDecoder(strings.NewReader(content))
		for {
			if _, err := decoder.Token(); err != nil {
				require.Equal(t, io.EOF, err, "part %s must be well-formed", name)
				break
			}
		}
	}
}

func TestBuilder_EmptyImageDegradesGracefully(t *testing.T) {
	deck := testDeck(entities.Slide{Title: "One", Body: "a", Layout: entities.LayoutTitleBody})
	deck.Cover.ImageBytes = nil

	archive, err := NewBuilder().Build(context.Background(), deck)
	require.NoError(t, err)

	files := readArchive(t, archive)
	content, ok := files["ppt/media/cover.png"]
	require.True(t, ok, "image part must exist even without image bytes")
	assert.Empty(t, content)
}

func TestBuilder_EmbedsImageVerbatim(t *testing.T) {
	image := append([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n'}, []byte("payload")...)

	deck := testDeck(entities.Slide{Title: "One", Body: "a", Layout: entities.LayoutTitleBody})
	deck.Cover.ImageBytes = image

	archive, err := NewBuilder().Build(context.Background(), deck)
	require.NoError(t, err)

	files := readArchive(t, archive)
	assert.Equal(t, string(image), files["ppt/media/cover.png"])
}

func TestBuilder_InputContractViolations(t *testing.T) {
	tests := []struct {
		name    string
		deck    *entities.Deck
		errType BuildErrorType
	}{
		{
			name:    "nil deck",
			deck:    nil,
			errType: ErrorTypeValidation,
		},
		{
			name:    "empty slide list",
			deck:    &entities.Deck{Title: "empty"},
			errType: ErrorTypeValidation,
		},
		{
			name: "first slide not the cover",
			deck: &entities.Deck{
				Title:  "misordered",
				Slides: []entities.Slide{{Title: "One", Body: "a", Layout: entities.LayoutTitleBody}},
			},
			errType: ErrorTypeValidation,
		},
		{
			name: "non-PNG cover image",
			deck: func() *entities.Deck {
				d := testDeck(entities.Slide{Title: "One", Body: "a", Layout: entities.LayoutTitleBody})
				d.Cover.ImageBytes = []byte("GIF89a not a png")
				return d
			}(),
			errType: ErrorTypeImage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := NewBuilder().Build(context.Background(), tt.deck)
			require.Error(t, err)
			assert.Nil(t, result, "no partial archive on structural failure")

			var buildErr *BuildError
			require.ErrorAs(t, err, &buildErr)
			assert.Equal(t, tt.errType, buildErr.Type)
		})
	}
}
