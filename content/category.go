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
	"golang.org/x/exp/slices"

	"github.com/contentstream/pdf"
)

// Category identifies one of the seven namespaces of a PDF resource
// dictionary.  Resource names are unique only within their category.
//
// See section 7.8.3, table 34 of PDF 32000-1:2008.
type Category byte

// The valid resource categories, in the order of table 34.  This order
// is significant: [Resources.Merge] processes categories and
// [Resources.Export] writes namespace keys in exactly this order.
const (
	ExtGState Category = iota + 1 // graphics state parameter dictionaries
	ColorSpace
	Pattern
	Shading
	XObject // external objects (images and form XObjects)
	Font
	Properties // property lists for marked content
)

var allCategories = []Category{
	ExtGState,
	ColorSpace,
	Pattern,
	Shading,
	XObject,
	Font,
	Properties,
}

// Categories returns all resource categories, in the fixed order of
// table 34.
func Categories() []Category {
	return slices.Clone(allCategories)
}

// Key returns the dictionary key under which the category's mapping is
// stored in a resource dictionary.
func (c Category) Key() pdf.Name {
	switch c {
	case ExtGState:
		return "ExtGState"
	case ColorSpace:
		return "ColorSpace"
	case Pattern:
		return "Pattern"
	case Shading:
		return "Shading"
	case XObject:
		return "XObject"
	case Font:
		return "Font"
	case Properties:
		return "Properties"
	default:
		panic("invalid resource category")
	}
}

func (c Category) String() string {
	return string(c.Key())
}
