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

package pdf

import "bytes"

// NewFormXObject wraps a rendered content stream into a Form XObject
// which can be referenced from other content streams.
//
// See section 8.10 of PDF 32000-1:2008.
//
// The body is used as the stream data unchanged.  The returned stream
// is not written to any file and not registered anywhere; this is left
// to the caller, for example via [Writer.WriteIndirect].
func NewFormXObject(body []byte, bbox *Rectangle, resources Object) *Stream {
	dict := Dict{
		"Type":     Name("XObject"),
		"Subtype":  Name("Form"),
		"FormType": Integer(1),
		"BBox":     bbox,
		"Length":   Integer(len(body)),
	}
	if resources != nil {
		dict["Resources"] = resources
	}
	return &Stream{
		Dict: dict,
		R:    bytes.NewReader(body),
	}
}
