package pptx

import (
	"strconv"
	"strings"
)

// Small element-tree XML builder. Parts are assembled as trees and
// serialized in one pass, with escaping applied to every attribute
// value and text node at write time. Call sites never interpolate user
// input into markup, so a forgotten escape cannot corrupt a part.

// Element is a single XML element with ordered attributes and children
type Element struct {
	name     string
	attrs    []attribute
	children []node
}

type attribute struct {
	name  string
	value string
}

// node is either a child element or a text segment
type node struct {
	element *Element
	text    string
}

// El creates an element with the given qualified name
func El(name string) *Element {
	return &Element{name: name}
}

// Attr appends an attribute; insertion order is preserved in the output
func (e *Element) Attr(name, value string) *Element {
	e.attrs = append(e.attrs, attribute{name: name, value: value})
	return e
}

// AttrInt appends an integer-valued attribute
func (e *Element) AttrInt(name string, value int64) *Element {
	return e.Attr(name, strconv.FormatInt(value, 10))
}

// Add appends child elements, skipping nils so callers can build
// optional children inline
func (e *Element) Add(children ...*Element) *Element {
	for _, child := range children {
		if child != nil {
			e.children = append(e.children, node{element: child})
		}
	}
	return e
}

// Text appends a character-data child; it is escaped on serialization
func (e *Element) Text(s string) *Element {
	e.children = append(e.children, node{text: s})
	return e
}

// String serializes the element tree. Elements without children are
// self-closed.
func (e *Element) String() string {
	var b strings.Builder
	e.write(&b)
	return b.String()
}

func (e *Element) write(b *strings.Builder) {
	b.WriteByte('<')
	b.WriteString(e.name)
	for _, a := range e.attrs {
		b.WriteByte(' ')
		b.WriteString(a.name)
		b.WriteString(`="`)
		b.WriteString(escape(a.value))
		b.WriteByte('"')
	}

	if len(e.children) == 0 {
		b.WriteString("/>")
		return
	}

	b.WriteByte('>')
	for _, child := range e.children {
		if child.element != nil {
			child.element.write(b)
		} else {
			b.WriteString(escape(child.text))
		}
	}
	b.WriteString("</")
	b.WriteString(e.name)
	b.WriteByte('>')
}

const xmlDeclaration = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\r\n"

// Document serializes a root element behind the standard XML declaration
func Document(root *Element) string {
	return xmlDeclaration + root.String()
}

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// escape replaces the five XML special characters
func escape(s string) string {
	return escaper.Replace(s)
}
