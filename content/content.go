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

package content

import (
	"errors"

	"seehuhn.de/go/geom/rect"

	"github.com/contentstream/pdf"
)

// Fragment is a part of a PDF content stream, together with the
// resources it depends on and its bounding box.
//
// Whether a Fragment can be rendered more than once is up to the
// concrete type.  [Raw] fragments can be reused freely; other
// implementations may cache or consume state on the first call, so
// callers must not assume idempotence unless the concrete type
// documents it.
type Fragment interface {
	// Render compiles the fragment to a stream of graphics
	// operators.
	Render() ([]byte, error)

	// Resources returns the resource dictionary of the fragment.
	Resources() *Resources

	// Bounds returns the bounding box of the fragment.
	Bounds() rect.Rect
}

// Base carries the state shared by all content fragments: the
// resource dictionary, the bounding box, and an optional handle to a
// document writer.  It is meant to be embedded in Fragment
// implementations; Base itself does not implement Render.
type Base struct {
	res *Resources
	box rect.Rect
	out *pdf.Writer
}

// NewBase initializes the shared fragment state.  If res is nil, a
// fresh empty resource dictionary is allocated.  The box must have
// non-negative width and height.  The writer handle may be nil and can
// be set later using [Base.SetWriter].
func NewBase(res *Resources, box rect.Rect, out *pdf.Writer) Base {
	if res == nil {
		res = &Resources{}
	}
	return Base{res: res, box: box, out: out}
}

// Resources returns the resource dictionary of the fragment.  The
// returned value is the live dictionary, not a copy.
func (b *Base) Resources() *Resources {
	return b.res
}

// Bounds returns the bounding box of the fragment.
func (b *Base) Bounds() rect.Rect {
	return b.box
}

// SetResource adds a value to the fragment's resource dictionary.  If
// the name is already used within the category, the old value is
// overwritten silently.
func (b *Base) SetResource(cat Category, name pdf.Name, value pdf.Object) {
	b.res.Set(cat, name, value)
}

// ImportResources merges another resource dictionary into the
// fragment's own.  On a name collision the [*ConflictError] from
// [Resources.Merge] is returned unchanged, and the partially merged
// state described there remains.
func (b *Base) ImportResources(other *Resources) error {
	return b.res.Merge(other)
}

// Writer returns the document writer associated with the fragment, or
// nil if none is set.
func (b *Base) Writer() *pdf.Writer {
	return b.out
}

// SetWriter associates a document writer with the fragment, replacing
// any previously set writer.  The fragment only keeps the handle;
// fragment types can use it to register companion resources on their
// own initiative.
func (b *Base) SetWriter(out *pdf.Writer) {
	b.out = out
}

var errBBox = errors.New("bounding box has negative width or height")

// AsFormXObject renders the fragment and wraps the result into a Form
// XObject, pairing the operator stream with the fragment's bounding
// box and its exported resource dictionary.
//
// The resulting stream is not written to any file, even if the
// fragment holds a writer handle; registering the object is left to
// the caller.
func AsFormXObject(frag Fragment) (*pdf.Stream, error) {
	body, err := frag.Render()
	if err != nil {
		return nil, err
	}

	box := frag.Bounds()
	if box.URx < box.LLx || box.URy < box.LLy {
		return nil, errBBox
	}
	bbox := &pdf.Rectangle{
		LLx: box.LLx,
		LLy: box.LLy,
		URx: box.URx,
		URy: box.URy,
	}

	return pdf.NewFormXObject(body, bbox, frag.Resources().Export()), nil
}

// Raw is a content fragment consisting of pre-rendered graphics
// operators.
type Raw struct {
	Base
	data []byte
}

// NewRaw creates a fragment from a pre-rendered operator stream.  The
// buffer is stored as is and must not be modified afterwards.  If res
// is nil, the fragment starts with an empty resource dictionary.
func NewRaw(data []byte, res *Resources, box rect.Rect) *Raw {
	return &Raw{
		Base: NewBase(res, box, nil),
		data: data,
	}
}

// Render returns the stored operator stream unchanged.  Raw fragments
// can be rendered any number of times.
func (r *Raw) Render() ([]byte, error) {
	return r.data, nil
}
