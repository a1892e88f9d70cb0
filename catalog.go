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

import (
	"time"

	"golang.org/x/text/language"
)

// Catalog represents the document catalog dictionary, the root of the
// object graph of a PDF file.
//
// See section 7.7.2 of PDF 32000-1:2008.
type Catalog struct {
	// Pages is the reference to the root node of the page tree.
	Pages *Reference

	// Lang specifies the natural language for all text in the
	// document.  The zero value leaves the entry out.
	Lang language.Tag
}

// AsDict returns the PDF dictionary for the catalog.
func (c *Catalog) AsDict() Dict {
	dict := Dict{
		"Type":  Name("Catalog"),
		"Pages": c.Pages,
	}
	if !c.Lang.IsRoot() {
		dict["Lang"] = TextString(c.Lang.String())
	}
	return dict
}

// Info represents a PDF document information dictionary.  All fields
// are optional; the zero value describes an empty dictionary.
//
// See section 14.3.3 of PDF 32000-1:2008.
type Info struct {
	Title    string
	Author   string
	Subject  string
	Keywords string

	// Creator gives the name of the application that created the
	// original document, if the document was converted to PDF from
	// another format.
	Creator string

	// Producer gives the name of the application that converted the
	// document to PDF.
	Producer string

	// CreationDate gives the date and time the document was created.
	CreationDate time.Time

	// ModDate gives the date and time the document was most recently
	// modified.
	ModDate time.Time
}

// AsDict returns the PDF dictionary for the information dictionary.
// Unset fields are omitted.
func (info *Info) AsDict() Dict {
	dict := Dict{}
	text := map[Name]string{
		"Title":    info.Title,
		"Author":   info.Author,
		"Subject":  info.Subject,
		"Keywords": info.Keywords,
		"Creator":  info.Creator,
		"Producer": info.Producer,
	}
	for key, val := range text {
		if val != "" {
			dict[key] = TextString(val)
		}
	}
	if !info.CreationDate.IsZero() {
		dict["CreationDate"] = Date(info.CreationDate)
	}
	if !info.ModDate.IsZero() {
		dict["ModDate"] = Date(info.ModDate)
	}
	return dict
}
