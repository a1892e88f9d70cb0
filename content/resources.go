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
	"fmt"
	"io"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/contentstream/pdf"
)

// Resources represents a PDF resource dictionary under construction.
// For each resource category it maps resource names to the
// corresponding PDF objects.  The zero value is an empty resource
// dictionary, ready for use.
//
// See section 7.8.3 of PDF 32000-1:2008.
type Resources struct {
	ExtGState  pdf.Dict
	ColorSpace pdf.Dict
	Pattern    pdf.Dict
	Shading    pdf.Dict
	XObject    pdf.Dict
	Font       pdf.Dict
	Properties pdf.Dict
}

func (r *Resources) categoryField(cat Category) *pdf.Dict {
	switch cat {
	case ExtGState:
		return &r.ExtGState
	case ColorSpace:
		return &r.ColorSpace
	case Pattern:
		return &r.Pattern
	case Shading:
		return &r.Shading
	case XObject:
		return &r.XObject
	case Font:
		return &r.Font
	case Properties:
		return &r.Properties
	default:
		panic("invalid resource category")
	}
}

// CategoryDict returns the live name-to-resource mapping for the given
// category, allocating it if needed.  Changes made through the
// returned map are visible to r.
func (r *Resources) CategoryDict(cat Category) pdf.Dict {
	field := r.categoryField(cat)
	if *field == nil {
		*field = pdf.Dict{}
	}
	return *field
}

// Set adds the resource value under the given name to the category's
// mapping.  If the name is already used within the category, the old
// value is overwritten silently.
func (r *Resources) Set(cat Category, name pdf.Name, value pdf.Object) {
	r.CategoryDict(cat)[name] = value
}

// Merge adds all entries of other to r, category by category in the
// fixed category order.
//
// If a resource name of other is already used in the same category of
// r, Merge stops and returns a [*ConflictError] describing the
// collision.  Merge does not roll back: entries from categories
// processed before the collision remain in r.  Within one category,
// names are visited in sorted order, so the reported collision is
// deterministic.
//
// other is never modified; the resource values are shared between
// both dictionaries afterwards, not copied.
func (r *Resources) Merge(other *Resources) error {
	for _, cat := range allCategories {
		src := *other.categoryField(cat)
		if len(src) == 0 {
			continue
		}
		dst := r.CategoryDict(cat)

		names := maps.Keys(src)
		slices.Sort(names)
		for _, name := range names {
			if _, taken := dst[name]; taken {
				return &ConflictError{Category: cat, Name: name}
			}
			dst[name] = src[name]
		}
	}
	return nil
}

// Export assembles the resource dictionary in the form written to the
// PDF file.  Categories which are empty at the time of the call are
// omitted; the remaining namespace keys appear in the fixed category
// order.  The per-category mappings are shared with r, not copied.
func (r *Resources) Export() *ResourceDict {
	res := &ResourceDict{}
	for _, cat := range allCategories {
		dict := *r.categoryField(cat)
		if len(dict) == 0 {
			continue
		}
		res.keys = append(res.keys, cat.Key())
		res.vals = append(res.vals, dict)
	}
	return res
}

// ResourceDict is an exported resource dictionary, as stored under the
// /Resources key of a page or Form XObject.  Unlike [pdf.Dict] it
// keeps its keys in the fixed category order, so serialized output is
// reproducible byte for byte.
type ResourceDict struct {
	keys []pdf.Name
	vals []pdf.Dict
}

// Len returns the number of non-empty categories in the dictionary.
func (d *ResourceDict) Len() int {
	return len(d.keys)
}

// Keys returns the namespace keys present in the dictionary, in the
// fixed category order.
func (d *ResourceDict) Keys() []pdf.Name {
	return slices.Clone(d.keys)
}

// Get returns the name-to-resource mapping stored under the given
// namespace key, or nil if the key is absent.
func (d *ResourceDict) Get(key pdf.Name) pdf.Dict {
	for i, k := range d.keys {
		if k == key {
			return d.vals[i]
		}
	}
	return nil
}

// PDF implements the [pdf.Object] interface.
func (d *ResourceDict) PDF(w io.Writer) error {
	_, err := w.Write([]byte("<<"))
	if err != nil {
		return err
	}
	for i, key := range d.keys {
		_, err = w.Write([]byte("\n"))
		if err != nil {
			return err
		}
		err = key.PDF(w)
		if err != nil {
			return err
		}
		_, err = w.Write([]byte(" "))
		if err != nil {
			return err
		}
		err = d.vals[i].PDF(w)
		if err != nil {
			return err
		}
	}
	_, err = w.Write([]byte("\n>>"))
	return err
}

// ConflictError is returned by [Resources.Merge] when both resource
// dictionaries use the same name within one category.
type ConflictError struct {
	Category Category
	Name     pdf.Name
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("resource name %q already used in category /%s",
		string(e.Name), e.Category)
}
