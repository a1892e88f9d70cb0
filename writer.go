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
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/exp/maps"
)

// Writer represents a PDF file open for writing.
//
// A Writer is not safe for concurrent use; callers must serialize
// access externally.
type Writer struct {
	PDFVersion Version

	w       *posWriter
	xref    map[int]*xRefEntry
	nextRef int
	closed  bool
}

type xRefEntry struct {
	Pos        int64
	Generation uint16
}

// NewWriter prepares a PDF file for writing.
func NewWriter(w io.Writer, ver Version) (*Writer, error) {
	versionString, err := ver.ToString()
	if err != nil {
		return nil, err
	}

	pdf := &Writer{
		PDFVersion: ver,

		w:       &posWriter{w: w},
		nextRef: 1,
		xref:    make(map[int]*xRefEntry),
	}
	pdf.xref[0] = &xRefEntry{
		Pos:        -1,
		Generation: 65535,
	}

	_, err = fmt.Fprintf(pdf.w, "%%PDF-%s\n%%\x80\x80\x80\x80\n", versionString)
	if err != nil {
		return nil, err
	}

	return pdf, nil
}

// Create creates the named PDF file and opens it for output.  If a
// previous file with the same name exists, it is overwritten.  After
// writing is complete, Close must be called to write the trailer and
// to close the underlying file.
func Create(name string) (*Writer, error) {
	fd, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	return NewWriter(fd, V1_7)
}

// Alloc allocates an object number for an indirect object.
func (pdf *Writer) Alloc() *Reference {
	res := &Reference{
		Number:     pdf.nextRef,
		Generation: 0,
	}
	pdf.nextRef++
	return res
}

// WriteIndirect writes an object to the PDF file, as an indirect
// object.  The returned reference can be used to refer to this object
// from other parts of the file.  If ref is nil, a new object number is
// allocated.
func (pdf *Writer) WriteIndirect(obj Object, ref *Reference) (*Reference, error) {
	if pdf.closed {
		return nil, ErrClosed
	}

	pos := pdf.w.pos

	if ref == nil {
		ref = pdf.Alloc()
	} else {
		_, seen := pdf.xref[ref.Number]
		if seen {
			return nil, errors.New("object already written")
		}
	}

	if obj == nil {
		// missing objects are treated as null
		pos = -1
	} else {
		_, err := fmt.Fprintf(pdf.w, "%d %d obj\n", ref.Number, ref.Generation)
		if err != nil {
			return nil, err
		}
		err = obj.PDF(pdf.w)
		if err != nil {
			return nil, err
		}
		_, err = pdf.w.Write([]byte("\nendobj\n"))
		if err != nil {
			return nil, err
		}
	}

	pdf.xref[ref.Number] = &xRefEntry{Pos: pos, Generation: ref.Generation}

	return ref, nil
}

// WriteStream writes body as an indirect stream object with the given
// stream dictionary.  The /Length entry, and /Filter entries for any
// given filters, are added automatically; dict itself is not
// modified.  If ref is nil, a new object number is allocated.
func (pdf *Writer) WriteStream(dict Dict, body []byte, ref *Reference, filters ...StreamFilter) (*Reference, error) {
	var filterNames Array
	for _, filter := range filters {
		enc, err := filter.Encode(body)
		if err != nil {
			return nil, err
		}
		body = enc
		filterNames = append(filterNames, filter.Name())
	}

	var streamDict Dict
	if dict == nil {
		streamDict = Dict{}
	} else {
		streamDict = maps.Clone(dict)
	}
	streamDict["Length"] = Integer(len(body))
	switch len(filterNames) {
	case 0:
		// pass
	case 1:
		streamDict["Filter"] = filterNames[0]
	default:
		streamDict["Filter"] = filterNames
	}

	stream := &Stream{
		Dict: streamDict,
		R:    bytes.NewReader(body),
	}
	return pdf.WriteIndirect(stream, ref)
}

// Close writes the document catalog, the optional information
// dictionary, the cross-reference table and the trailer.  If the
// underlying io.Writer has a Close method, it is closed, too.
//
// The Writer cannot be used any more after Close has been called.
func (pdf *Writer) Close(catalog *Catalog, info *Info) error {
	if pdf.closed {
		return ErrClosed
	}
	if catalog == nil || catalog.Pages == nil {
		return errors.New("missing page tree")
	}

	root, err := pdf.WriteIndirect(catalog.AsDict(), nil)
	if err != nil {
		return err
	}

	var infoRef *Reference
	if info != nil {
		infoRef, err = pdf.WriteIndirect(info.AsDict(), nil)
		if err != nil {
			return err
		}
	}

	trailer := Dict{
		"Size": Integer(pdf.nextRef),
		"Root": root,
	}
	if infoRef != nil {
		trailer["Info"] = infoRef
	}

	xRefPos := pdf.w.pos
	err = pdf.writeXRefTable(trailer)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(pdf.w, "startxref\n%d\n%%%%EOF\n", xRefPos)
	if err != nil {
		return err
	}

	pdf.closed = true

	if closer, ok := pdf.w.w.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// writeXRefTable writes a classic cross-reference table followed by
// the trailer dictionary.  Object numbers which were allocated but
// never written appear as free entries.
func (pdf *Writer) writeXRefTable(trailer Dict) error {
	_, err := fmt.Fprintf(pdf.w, "xref\n0 %d\n", pdf.nextRef)
	if err != nil {
		return err
	}
	for number := 0; number < pdf.nextRef; number++ {
		entry := pdf.xref[number]
		if entry == nil || entry.Pos < 0 {
			gen := uint16(65535)
			if entry != nil {
				gen = entry.Generation
			}
			_, err = fmt.Fprintf(pdf.w, "%010d %05d f\r\n", 0, gen)
		} else {
			_, err = fmt.Fprintf(pdf.w, "%010d %05d n\r\n", entry.Pos, entry.Generation)
		}
		if err != nil {
			return err
		}
	}

	_, err = pdf.w.Write([]byte("trailer\n"))
	if err != nil {
		return err
	}
	err = trailer.PDF(pdf.w)
	if err != nil {
		return err
	}
	_, err = pdf.w.Write([]byte("\n"))
	return err
}

type posWriter struct {
	w   io.Writer
	pos int64
}

func (w *posWriter) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	w.pos += int64(n)
	return n, err
}
