package pptx

import (
	"encoding/xml"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElement_Serialization(t *testing.T) {
	tests := []struct {
		name    string
		element *Element
		want    string
	}{
		{
			name:    "empty element self-closes",
			element: El("a:p"),
			want:    "<a:p/>",
		},
		{
			name:    "attributes keep insertion order",
			element: El("a:off").AttrInt("x", 914400).AttrInt("y", 0),
			want:    `<a:off x="914400" y="0"/>`,
		},
		{
			name:    "text child",
			element: El("a:t").Text("Agenda"),
			want:    "<a:t>Agenda</a:t>",
		},
		{
			name:    "nested children",
			element: El("a:solidFill").Add(El("a:srgbClr").Attr("val", "FFFFFF")),
			want:    `<a:solidFill><a:srgbClr val="FFFFFF"/></a:solidFill>`,
		},
		{
			name:    "nil children are skipped",
			element: El("p:spTree").Add(nil, El("p:grpSpPr"), nil),
			want:    "<p:spTree><p:grpSpPr/></p:spTree>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.element.String())
		})
	}
}

func TestEscape_FiveSpecialCharacters(t *testing.T) {
	assert.Equal(t, "&lt;&quot;&amp;&apos;&gt;", escape(`<"&'>`))
}

func TestElement_EscapesTextAndAttributes(t *testing.T) {
	got := El("a:t").Attr("note", `say "hi" & <go>`).Text(`<"&'>`).String()

	assert.Equal(t, `<a:t note="say &quot;hi&quot; &amp; &lt;go&gt;">&lt;&quot;&amp;&apos;&gt;</a:t>`, got)
}

func TestElement_RoundTripsThroughStandardParser(t *testing.T) {
	// Escaped output must be recoverable by any conforming XML parser.
	original := `title with <"&'> specials`
	doc := Document(El("t").Text(original))

	var parsed struct {
		Text string `xml:",chardata"`
	}
	require.NoError(t, xml.Unmarshal([]byte(doc), &parsed))
	assert.Equal(t, original, parsed.Text)
}

func TestDocument_Declaration(t *testing.T) {
	doc := Document(El("Types"))

	assert.True(t, strings.HasPrefix(doc, `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`))
	assert.True(t, strings.HasSuffix(doc, "<Types/>"))
}
