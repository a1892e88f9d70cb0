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

// Package content provides building blocks for PDF content streams.
//
// A [Fragment] is a piece of content together with the resource
// dictionary it depends on.  Fragments can be combined: resources from
// one fragment can be imported into another, with name collisions
// reported as errors rather than silently overwriting resources.  A
// finished fragment can be converted into a Form XObject for use from
// other content streams.
//
// None of the types in this package are safe for concurrent use.
package content
