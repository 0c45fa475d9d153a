package pptx

import (
	"strings"

	"github.com/deckforge/deckforge/internal/domain/entities"
)

// Literal fallbacks for cover fields that are blank after trimming
const (
	defaultCoverTitle = "Cover"
	namePrefix        = "Name :"
	datePrefix        = "Date :"
)

const (
	colorWhite = "FFFFFF"
	colorInk   = "333333"
	colorBar   = "4472C4"
)

// Run sizes in hundredths of a point
const (
	sizeCoverTitle = 4400
	sizeCoverMeta  = 2000
	sizeTitle      = 3200
	sizeSubtitle   = 2400
	sizeBody       = 1800
)

type runStyle struct {
	size  int64
	bold  bool
	color string
}

// renderCoverSlide emits slide 1: a full-bleed background picture
// referencing the embedded cover image, overlaid with the deck title,
// a name line, and a date line in fixed positions.
func renderCoverSlide(title, name, date string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		title = defaultCoverTitle
	}

	nameLine := namePrefix
	if trimmed := strings.TrimSpace(name); trimmed != "" {
		nameLine = namePrefix + " " + trimmed
	}

	dateLine := datePrefix
	if trimmed := strings.TrimSpace(date); trimmed != "" {
		dateLine = datePrefix + " " + trimmed
	}

	tree := shapeTree().Add(
		backgroundPicture(2),
		textBox(3, "Cover Title", Inches(0.9), Inches(2.6), Inches(11.5), Inches(1.4),
			paragraph(title, runStyle{size: sizeCoverTitle, bold: true, color: colorWhite})),
		textBox(4, "Cover Name", Inches(0.9), Inches(4.2), Inches(6), Inches(0.5),
			paragraph(nameLine, runStyle{size: sizeCoverMeta, bold: true, color: colorWhite})),
		textBox(5, "Cover Date", Inches(0.9), Inches(4.8), Inches(6), Inches(0.5),
			paragraph(dateLine, runStyle{size: sizeCoverMeta, bold: true, color: colorWhite})),
	)

	return renderSlide(tree)
}

// renderContentSlide emits a numbered content slide: the fixed accent
// bar, the title box, and a layout-dependent body region.
func renderContentSlide(s *entities.Slide) string {
	tree := shapeTree().Add(
		solidRect(2, "Accent Bar", 0, 0, canvasWidth, Inches(0.25), colorBar),
		textBox(3, "Title", Inches(0.6), Inches(0.5), canvasWidth-Inches(1.2), Inches(1),
			paragraph(strings.TrimSpace(s.Title), runStyle{size: sizeTitle, bold: true, color: colorInk})),
	)

	switch s.Layout {
	case entities.LayoutTitle:
		if subtitle := strings.TrimSpace(s.Body); subtitle != "" {
			tree.Add(textBox(4, "Subtitle", Inches(0.6), Inches(2.4), canvasWidth-Inches(1.2), Inches(1.2),
				paragraph(subtitle, runStyle{size: sizeSubtitle, color: colorInk})))
		}

	case entities.LayoutTwoColumn:
		left, right := s.SplitColumns()
		gap := Inches(0.4)
		columnWidth := (canvasWidth - 2*Inches(0.6) - gap) / 2
		tree.Add(
			textBox(4, "Body Left", Inches(0.6), Inches(1.7), columnWidth, canvasHeight-Inches(2.3),
				bodyParagraphs(left)...),
			textBox(5, "Body Right", Inches(0.6)+columnWidth+gap, Inches(1.7), columnWidth, canvasHeight-Inches(2.3),
				bodyParagraphs(right)...),
		)

	default: // LayoutTitleBody
		tree.Add(textBox(4, "Body", Inches(0.6), Inches(1.7), canvasWidth-Inches(1.2), canvasHeight-Inches(2.3),
			bodyParagraphs(s.BodyLines())...))
	}

	return renderSlide(tree)
}

// bodyParagraphs turns body lines into one paragraph each. A text box
// must always contain at least one paragraph to stay well-formed, so an
// empty line list yields a single empty paragraph.
func bodyParagraphs(lines []string) []*Element {
	if len(lines) == 0 {
		return []*Element{El("a:p")}
	}

	paragraphs := make([]*Element, 0, len(lines))
	for _, line := range lines {
		paragraphs = append(paragraphs, paragraph(line, runStyle{size: sizeBody, color: colorInk}))
	}
	return paragraphs
}

func renderSlide(tree *Element) string {
	root := El("p:sld").
		Attr("xmlns:a", nsDrawingML).
		Attr("xmlns:r", nsDocumentRels).
		Attr("xmlns:p", nsPresentationML)

	root.Add(
		El("p:cSld").Add(tree),
		El("p:clrMapOvr").Add(El("a:masterClrMapping")),
	)

	return Document(root)
}

// shapeTree builds the mandatory group-shape scaffolding every slide
// shape tree starts with.
func shapeTree() *Element {
	return El("p:spTree").Add(
		El("p:nvGrpSpPr").Add(
			El("p:cNvPr").Attr("id", "1").Attr("name", ""),
			El("p:cNvGrpSpPr"),
			El("p:nvPr"),
		),
		El("p:grpSpPr"),
	)
}

// backgroundPicture stretches the cover image relationship across the
// whole canvas.
func backgroundPicture(id int64) *Element {
	return El("p:pic").Add(
		El("p:nvPicPr").Add(
			El("p:cNvPr").AttrInt("id", id).Attr("name", "Cover Image"),
			El("p:cNvPicPr"),
			El("p:nvPr"),
		),
		El("p:blipFill").Add(
			El("a:blip").Attr("r:embed", "rId2"),
			El("a:stretch").Add(El("a:fillRect")),
		),
		El("p:spPr").Add(
			transform(0, 0, canvasWidth, canvasHeight),
			presetRect(),
		),
	)
}

func textBox(id int64, name string, x, y, w, h int64, paragraphs ...*Element) *Element {
	body := El("p:txBody").Add(
		El("a:bodyPr").Attr("wrap", "square"),
		El("a:lstStyle"),
	)
	body.Add(paragraphs...)

	return El("p:sp").Add(
		El("p:nvSpPr").Add(
			El("p:cNvPr").AttrInt("id", id).Attr("name", name),
			El("p:cNvSpPr").Attr("txBox", "1"),
			El("p:nvPr"),
		),
		El("p:spPr").Add(
			transform(x, y, w, h),
			presetRect(),
		),
		body,
	)
}

func solidRect(id int64, name string, x, y, w, h int64, color string) *Element {
	return El("p:sp").Add(
		El("p:nvSpPr").Add(
			El("p:cNvPr").AttrInt("id", id).Attr("name", name),
			El("p:cNvSpPr"),
			El("p:nvPr"),
		),
		El("p:spPr").Add(
			transform(x, y, w, h),
			presetRect(),
			El("a:solidFill").Add(El("a:srgbClr").Attr("val", color)),
		),
		El("p:txBody").Add(El("a:bodyPr"), El("a:lstStyle"), El("a:p")),
	)
}

func paragraph(text string, style runStyle) *Element {
	properties := El("a:rPr").Attr("lang", "en-US").AttrInt("sz", style.size).Attr("dirty", "0")
	if style.bold {
		properties.Attr("b", "1")
	}
	if style.color != "" {
		properties.Add(El("a:solidFill").Add(El("a:srgbClr").Attr("val", style.color)))
	}

	return El("a:p").Add(
		El("a:r").Add(
			properties,
			El("a:t").Text(text),
		),
	)
}

func transform(x, y, w, h int64) *Element {
	return El("a:xfrm").Add(
		El("a:off").AttrInt("x", x).AttrInt("y", y),
		El("a:ext").AttrInt("cx", w).AttrInt("cy", h),
	)
}

func presetRect() *Element {
	return El("a:prstGeom").Attr("prst", "rect").Add(El("a:avLst"))
}
