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

// Package pdf implements the PDF object model and a writer for PDF
// files.
//
// The native PDF object types are represented by the following Go
// types, all of which implement the [Object] interface:
//
//	Boolean          Bool
//	Integer          Integer
//	Real             Real
//	String           String
//	Name             Name
//	Array            Array
//	Dictionary       Dict
//	Stream           *Stream
//	Reference        *Reference
//
// A [Writer] serializes objects into a PDF file, keeping track of the
// cross-reference information required by the file format.  Content
// streams and resource dictionaries are composed using the
// content subpackage; page-level structure is provided by the pages
// subpackage.
package pdf
