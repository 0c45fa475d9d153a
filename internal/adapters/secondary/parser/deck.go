package parser

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/deckforge/deckforge/internal/domain/entities"
	"github.com/deckforge/deckforge/internal/domain/ports"
)

// DeckParser implements the DeckParser port for markdown deck files:
// YAML frontmatter, slides separated by --- lines, the first slide
// being the cover.
type DeckParser struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// NewDeckParser creates a new markdown deck parser
func NewDeckParser() *DeckParser {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Strikethrough,
		),
	)

	return &DeckParser{
		md: md,
		// StrictPolicy strips every tag, so raw HTML in slide text
		// degrades to its character data.
		policy: bluemonday.StrictPolicy(),
	}
}

// frontmatter mirrors the deck file's YAML header
type frontmatter struct {
	Title string `yaml:"title"`
	Name  string `yaml:"name"`
	Date  string `yaml:"date"`
	Image string `yaml:"image"`
}

var (
	slideDelimiter  = regexp.MustCompile(`(?m)^---\s*$`)
	layoutDirective = regexp.MustCompile(`^<!--\s*layout:\s*([a-zA-Z-]+)\s*-->`)
)

// Parse parses a markdown deck file into a deck model. Cover image
// bytes are not loaded here; the frontmatter image path is returned for
// the caller to resolve against the deck file's directory.
func (p *DeckParser) Parse(ctx context.Context, content []byte) (*ports.ParsedDeck, error) {
	meta, remaining := extractFrontmatter(content)

	var fm frontmatter
	if len(meta) > 0 {
		if err := yaml.Unmarshal(meta, &fm); err != nil {
			return nil, fmt.Errorf("parsing frontmatter: %w", err)
		}
	}

	var slides []entities.Slide
	for _, block := range slideDelimiter.Split(string(remaining), -1) {
		if strings.TrimSpace(block) == "" {
			continue
		}

		slide, err := p.parseSlide(block, len(slides) == 0)
		if err != nil {
			return nil, fmt.Errorf("parsing slide %d: %w", len(slides)+1, err)
		}
		slides = append(slides, slide)
	}

	if len(slides) == 0 {
		return nil, fmt.Errorf("deck has no slides")
	}

	deck := &entities.Deck{
		Title:  strings.TrimSpace(fm.Title),
		Slides: slides,
		Cover: entities.CoverConfig{
			Name: strings.TrimSpace(fm.Name),
			Date: strings.TrimSpace(fm.Date),
		},
	}
	if deck.Title == "" {
		deck.Title = slides[0].Title
	}

	return &ports.ParsedDeck{Deck: deck, ImagePath: strings.TrimSpace(fm.Image)}, nil
}

// parseSlide parses one slide block: an optional layout directive, a
// heading for the title, and body blocks flattened to lines.
func (p *DeckParser) parseSlide(block string, isCover bool) (entities.Slide, error) {
	block = strings.TrimSpace(block)

	layout := entities.LayoutTitleBody
	if match := layoutDirective.FindStringSubmatch(block); match != nil {
		parsed, err := parseLayout(match[1])
		if err != nil {
			return entities.Slide{}, err
		}
		layout = parsed
		block = strings.TrimSpace(block[len(match[0]):])
	}

	source := []byte(block)
	doc := p.md.Parser().Parse(text.NewReader(source))

	var title string
	var lines []string

	for node := doc.FirstChild(); node != nil; node = node.NextSibling() {
		switch n := node.(type) {
		case *ast.Heading:
			heading := p.cleanText(n, source)
			if title == "" {
				title = heading
			} else if heading != "" {
				lines = append(lines, heading)
			}

		case *ast.List:
			for item := n.FirstChild(); item != nil; item = item.NextSibling() {
				if line := p.cleanText(item, source); line != "" {
					lines = append(lines, line)
				}
			}

		case *ast.FencedCodeBlock, *ast.CodeBlock, *ast.HTMLBlock:
			for _, line := range blockLines(node, source) {
				if clean := p.cleanRaw(line); clean != "" {
					lines = append(lines, clean)
				}
			}

		default:
			if line := p.cleanText(node, source); line != "" {
				lines = append(lines, line)
			}
		}
	}

	if title == "" && len(lines) > 0 {
		// Promote the first body line, title-cased, to the slide title.
		title = cases.Title(language.Und).String(lines[0])
		lines = lines[1:]
	}

	return entities.Slide{
		ID:      uuid.NewString(),
		Title:   title,
		Body:    strings.Join(lines, "\n"),
		Layout:  layout,
		IsCover: isCover,
	}, nil
}

// cleanText extracts a node's character data and strips any raw HTML
func (p *DeckParser) cleanText(node ast.Node, source []byte) string {
	return p.cleanRaw(string(node.Text(source)))
}

func (p *DeckParser) cleanRaw(raw string) string {
	sanitized := p.policy.Sanitize(raw)
	return strings.TrimSpace(html.UnescapeString(sanitized))
}

// blockLines returns the raw source lines of a block node
func blockLines(node ast.Node, source []byte) []string {
	segments := node.Lines()
	lines := make([]string, 0, segments.Len())
	for i := 0; i < segments.Len(); i++ {
		segment := segments.At(i)
		lines = append(lines, strings.TrimRight(string(segment.Value(source)), "\n"))
	}
	return lines
}

func parseLayout(name string) (entities.Layout, error) {
	switch strings.ToLower(name) {
	case "title":
		return entities.LayoutTitle, nil
	case "title-body", "body":
		return entities.LayoutTitleBody, nil
	case "two-column", "columns":
		return entities.LayoutTwoColumn, nil
	}
	return "", fmt.Errorf("unknown layout %q", name)
}

// extractFrontmatter splits a leading YAML frontmatter block from the
// deck body
func extractFrontmatter(content []byte) (meta, remaining []byte) {
	trimmed := bytes.TrimLeft(content, "\n\r")
	if !bytes.HasPrefix(trimmed, []byte("---\n")) && !bytes.HasPrefix(trimmed, []byte("---\r\n")) {
		return nil, content
	}

	rest := trimmed[bytes.IndexByte(trimmed, '\n')+1:]
	end := slideDelimiter.FindIndex(rest)
	if end == nil {
		return nil, content
	}

	meta = rest[:end[0]]
	remaining = rest[end[1]:]
	return meta, remaining
}
