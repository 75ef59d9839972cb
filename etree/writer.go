// Package etree exports slide sets as XML documents.
package etree

import (
	"context"
	"strconv"

	"github.com/beevik/etree"
	"github.com/fwojciec/wordslide"
	"github.com/fwojciec/wordslide/fs"
)

// Ensure Writer implements wordslide.SlideSetWriter at compile time.
var _ wordslide.SlideSetWriter = (*Writer)(nil)

// Writer writes slide sets as XML files.
type Writer struct {
	path   string
	indent int
}

// Option configures a Writer.
type Option func(*Writer)

// WithIndent sets the number of spaces used to indent nested elements.
func WithIndent(spaces int) Option {
	return func(w *Writer) {
		w.indent = spaces
	}
}

// NewWriter creates a new Writer. If path is an existing directory, each
// set is written to a slug-named file inside it.
func NewWriter(path string, opts ...Option) *Writer {
	w := &Writer{path: path, indent: 2}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// WriteSlideSet writes set as an XML document.
func (w *Writer) WriteSlideSet(ctx context.Context, set *wordslide.SlideSet) error {
	if err := set.Validate(); err != nil {
		return err
	}

	doc := Document(set)
	doc.Indent(w.indent)
	data, err := doc.WriteToBytes()
	if err != nil {
		return err
	}
	return fs.WriteAtomic(fs.Target(w.path, set.Name, ".xml"), data)
}

// Document builds the XML representation of set:
//
//	<slideset name="..." source="..." url="...">
//	  <slide number="1" style="0">...</slide>
//	  <slide number="2" style="0" chorus="true">...</slide>
//	</slideset>
func Document(set *wordslide.SlideSet) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("slideset")
	root.CreateAttr("name", set.Name)
	root.CreateAttr("source", string(set.Source))
	if set.SourceURL != "" {
		root.CreateAttr("url", set.SourceURL)
	}
	if set.ContentHash != "" {
		root.CreateAttr("hash", set.ContentHash)
	}
	root.CreateAttr("styles", strconv.Itoa(set.Styles))

	for i, text := range set.Texts {
		slide := root.CreateElement("slide")
		slide.CreateAttr("number", strconv.Itoa(i+1))
		slide.CreateAttr("style", strconv.Itoa(text.Style))
		if set.Chorus != nil && *set.Chorus == i {
			slide.CreateAttr("chorus", "true")
		}
		slide.SetText(text.Text)
	}
	return doc
}
