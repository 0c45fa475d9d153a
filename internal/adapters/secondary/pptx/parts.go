package pptx

import "fmt"

// Namespace and content-type constants for the OPC presentation package
const (
	nsContentTypes   = "http://schemas.openxmlformats.org/package/2006/content-types"
	nsRelationships  = "http://schemas.openxmlformats.org/package/2006/relationships"
	nsDrawingML      = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsPresentationML = "http://schemas.openxmlformats.org/presentationml/2006/main"
	nsDocumentRels   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
)

const (
	relTypeOfficeDocument = nsDocumentRels + "/officeDocument"
	relTypeSlide          = nsDocumentRels + "/slide"
	relTypeSlideMaster    = nsDocumentRels + "/slideMaster"
	relTypeSlideLayout    = nsDocumentRels + "/slideLayout"
	relTypeTheme          = nsDocumentRels + "/theme"
	relTypeImage          = nsDocumentRels + "/image"
)

const (
	contentTypeRels         = "application/vnd.openxmlformats-package.relationships+xml"
	contentTypeXML          = "application/xml"
	contentTypePNG          = "image/png"
	contentTypePresentation = "application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"
	contentTypeSlide        = "application/vnd.openxmlformats-officedocument.presentationml.slide+xml"
	contentTypeSlideMaster  = "application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml"
	contentTypeSlideLayout  = "application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"
	contentTypeTheme        = "application/vnd.openxmlformats-officedocument.theme+xml"
)

// renderContentTypes declares the package's default extensions plus an
// explicit override for every fixed part and every numbered slide part.
func renderContentTypes(slideCount int) string {
	types := El("Types").Attr("xmlns", nsContentTypes)

	types.Add(
		El("Default").Attr("Extension", "rels").Attr("ContentType", contentTypeRels),
		El("Default").Attr("Extension", "xml").Attr("ContentType", contentTypeXML),
		El("Default").Attr("Extension", "png").Attr("ContentType", contentTypePNG),
		override("/ppt/presentation.xml", contentTypePresentation),
		override("/ppt/theme/theme1.xml", contentTypeTheme),
		override("/ppt/slideMasters/slideMaster1.xml", contentTypeSlideMaster),
		override("/ppt/slideLayouts/slideLayout1.xml", contentTypeSlideLayout),
		override("/ppt/media/cover.png", contentTypePNG),
	)

	for n := 1; n <= slideCount; n++ {
		types.Add(override(fmt.Sprintf("/ppt/slides/slide%d.xml", n), contentTypeSlide))
	}

	return Document(types)
}

func override(partName, contentType string) *Element {
	return El("Override").Attr("PartName", partName).Attr("ContentType", contentType)
}

// relation is one edge in a part's relationship graph
type relation struct {
	id      string
	relType string
	target  string
}

func renderRelationships(rels []relation) string {
	root := El("Relationships").Attr("xmlns", nsRelationships)
	for _, rel := range rels {
		root.Add(El("Relationship").
			Attr("Id", rel.id).
			Attr("Type", rel.relType).
			Attr("Target", rel.target))
	}
	return Document(root)
}

// renderPackageRels relates the package root to the presentation part
func renderPackageRels() string {
	return renderRelationships([]relation{
		{id: "rId1", relType: relTypeOfficeDocument, target: "ppt/presentation.xml"},
	})
}

// renderPresentationRels emits one relationship per slide in deck order,
// then the slide master and theme with IDs continuing after the slides.
func renderPresentationRels(slideCount int) string {
	rels := make([]relation, 0, slideCount+2)
	for n := 1; n <= slideCount; n++ {
		rels = append(rels, relation{
			id:      fmt.Sprintf("rId%d", n),
			relType: relTypeSlide,
			target:  fmt.Sprintf("slides/slide%d.xml", n),
		})
	}
	rels = append(rels,
		relation{
			id:      fmt.Sprintf("rId%d", slideCount+1),
			relType: relTypeSlideMaster,
			target:  "slideMasters/slideMaster1.xml",
		},
		relation{
			id:      fmt.Sprintf("rId%d", slideCount+2),
			relType: relTypeTheme,
			target:  "theme/theme1.xml",
		},
	)
	return renderRelationships(rels)
}

// renderPresentation lists every slide ID against its relationship ID
// and declares the fixed 16:9 canvas. Slide IDs start above the format's
// 256 floor; slide n gets 256+n.
func renderPresentation(slideCount int) string {
	root := El("p:presentation").
		Attr("xmlns:a", nsDrawingML).
		Attr("xmlns:r", nsDocumentRels).
		Attr("xmlns:p", nsPresentationML)

	root.Add(El("p:sldMasterIdLst").Add(
		El("p:sldMasterId").
			Attr("id", "2147483648").
			Attr("r:id", fmt.Sprintf("rId%d", slideCount+1)),
	))

	slideList := El("p:sldIdLst")
	for n := 1; n <= slideCount; n++ {
		slideList.Add(El("p:sldId").
			AttrInt("id", int64(256+n)).
			Attr("r:id", fmt.Sprintf("rId%d", n)))
	}
	root.Add(slideList)

	root.Add(
		El("p:sldSz").AttrInt("cx", canvasWidth).AttrInt("cy", canvasHeight),
		El("p:notesSz").AttrInt("cx", notesWidth).AttrInt("cy", notesHeight),
	)

	return Document(root)
}

// renderMasterRels relates the slide master to the shared layout and theme
func renderMasterRels() string {
	return renderRelationships([]relation{
		{id: "rId1", relType: relTypeSlideLayout, target: "../slideLayouts/slideLayout1.xml"},
		{id: "rId2", relType: relTypeTheme, target: "../theme/theme1.xml"},
	})
}

// renderLayoutRels relates the shared layout back to the slide master
func renderLayoutRels() string {
	return renderRelationships([]relation{
		{id: "rId1", relType: relTypeSlideMaster, target: "../slideMasters/slideMaster1.xml"},
	})
}

// renderSlideRels relates a slide to the shared layout; the cover slide
// additionally relates to its embedded background image.
func renderSlideRels(isCover bool) string {
	rels := []relation{
		{id: "rId1", relType: relTypeSlideLayout, target: "../slideLayouts/slideLayout1.xml"},
	}
	if isCover {
		rels = append(rels, relation{id: "rId2", relType: relTypeImage, target: "../media/cover.png"})
	}
	return renderRelationships(rels)
}
