// contentstream/pdf - a library for composing and writing PDF files
// Copyright (C) 2026  The contentstream authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package pages maintains the page tree of a PDF file.
package pages

import (
	"errors"

	"github.com/contentstream/pdf"
	"github.com/contentstream/pdf/content"
)

// Attributes specify the properties of a single page.
//
// See section 7.7.3.3 of PDF 32000-1:2008.
type Attributes struct {
	// Resources lists the resources used by the page's content
	// stream.
	Resources *content.Resources

	// MediaBox defines the boundaries of the physical medium on
	// which the page is displayed or printed.  If nil, the default
	// media box of the page tree is used.
	MediaBox *pdf.Rectangle

	// Rotate gives the number of degrees by which the page is
	// rotated clockwise when displayed or printed.  The value must
	// be a multiple of 90.
	Rotate int
}

// Tree writes the page tree of a PDF file.  Pages are appended one at
// a time; Finish must be called after the last page has been added.
type Tree struct {
	w        *pdf.Writer
	root     *pdf.Reference
	mediaBox *pdf.Rectangle
	kids     pdf.Array
	finished bool
}

// NewTree starts a new page tree on the given writer.  The defaultBox,
// if non-nil, is the media box used for all pages which do not specify
// their own.
func NewTree(w *pdf.Writer, defaultBox *pdf.Rectangle) *Tree {
	return &Tree{
		w:        w,
		root:     w.Alloc(),
		mediaBox: defaultBox,
	}
}

// AddPage appends a page to the tree.  The body is written as the
// page's content stream, using FlateDecode compression.  attr may be
// nil.  The returned reference points to the page dictionary.
func (t *Tree) AddPage(body []byte, attr *Attributes) (*pdf.Reference, error) {
	if t.finished {
		return nil, errors.New("page tree is finished")
	}

	contentRef, err := t.w.WriteStream(nil, body, nil, pdf.FilterCompress{})
	if err != nil {
		return nil, err
	}

	pageDict := pdf.Dict{
		"Type":     pdf.Name("Page"),
		"Parent":   t.root,
		"Contents": contentRef,
	}
	if attr != nil {
		if attr.Resources != nil {
			pageDict["Resources"] = attr.Resources.Export()
		}
		if attr.MediaBox != nil &&
			(t.mediaBox == nil || !attr.MediaBox.NearlyEqual(t.mediaBox, 1)) {
			pageDict["MediaBox"] = attr.MediaBox
		}
		if attr.Rotate != 0 {
			pageDict["Rotate"] = pdf.Integer(attr.Rotate)
		}
	}

	ref, err := t.w.WriteIndirect(pageDict, nil)
	if err != nil {
		return nil, err
	}
	t.kids = append(t.kids, ref)
	return ref, nil
}

// Finish writes the root node of the page tree and returns its
// reference, for use in the document catalog.  The tree cannot be
// used any more afterwards.
func (t *Tree) Finish() (*pdf.Reference, error) {
	if t.finished {
		return nil, errors.New("page tree is finished")
	}
	if len(t.kids) == 0 {
		return nil, errors.New("page tree contains no pages")
	}
	t.finished = true

	treeDict := pdf.Dict{
		"Type":  pdf.Name("Pages"),
		"Kids":  t.kids,
		"Count": pdf.Integer(len(t.kids)),
	}
	if t.mediaBox != nil {
		treeDict["MediaBox"] = t.mediaBox
	}
	return t.w.WriteIndirect(treeDict, t.root)
}
