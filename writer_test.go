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
	"compress/zlib"
	"errors"
	"io"
	"strings"
	"testing"

	"golang.org/x/text/language"
)

func TestAlloc(t *testing.T) {
	buf := &bytes.Buffer{}
	w, err := NewWriter(buf, V1_7)
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i <= 3; i++ {
		ref := w.Alloc()
		if ref.Number != i || ref.Generation != 0 {
			t.Errorf("got %d %d, want %d 0", ref.Number, ref.Generation, i)
		}
	}
}

func TestWriterOutput(t *testing.T) {
	buf := &bytes.Buffer{}
	w, err := NewWriter(buf, V1_7)
	if err != nil {
		t.Fatal(err)
	}

	pagesRef, err := w.WriteIndirect(Dict{
		"Type":  Name("Pages"),
		"Kids":  Array{},
		"Count": Integer(0),
	}, nil)
	if err != nil {
		t.Fatal(err)
	}

	err = w.Close(
		&Catalog{Pages: pagesRef, Lang: language.German},
		&Info{Title: "test file"})
	if err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "%PDF-1.7\n") {
		t.Errorf("bad header: %q", out[:9])
	}
	if !strings.HasSuffix(out, "%%EOF\n") {
		t.Errorf("bad trailer: %q", out[len(out)-10:])
	}
	for _, part := range []string{
		"1 0 obj",
		"/Type /Pages",
		"/Type /Catalog",
		"/Lang (de)",
		"/Title (test file)",
		"xref\n0 4\n",
		"trailer\n",
		"startxref\n",
	} {
		if !strings.Contains(out, part) {
			t.Errorf("output does not contain %q", part)
		}
	}
}

func TestWriterClosed(t *testing.T) {
	buf := &bytes.Buffer{}
	w, err := NewWriter(buf, V1_7)
	if err != nil {
		t.Fatal(err)
	}
	pagesRef, err := w.WriteIndirect(Dict{"Type": Name("Pages")}, nil)
	if err != nil {
		t.Fatal(err)
	}
	err = w.Close(&Catalog{Pages: pagesRef}, nil)
	if err != nil {
		t.Fatal(err)
	}

	_, err = w.WriteIndirect(Dict{}, nil)
	if !errors.Is(err, ErrClosed) {
		t.Errorf("got %v, want ErrClosed", err)
	}
	err = w.Close(&Catalog{Pages: pagesRef}, nil)
	if !errors.Is(err, ErrClosed) {
		t.Errorf("got %v, want ErrClosed", err)
	}
}

func TestWriteIndirectTwice(t *testing.T) {
	buf := &bytes.Buffer{}
	w, err := NewWriter(buf, V1_7)
	if err != nil {
		t.Fatal(err)
	}
	ref := w.Alloc()
	_, err = w.WriteIndirect(Integer(1), ref)
	if err != nil {
		t.Fatal(err)
	}
	_, err = w.WriteIndirect(Integer(2), ref)
	if err == nil {
		t.Error("writing the same object twice succeeded")
	}
}

func TestWriteStream(t *testing.T) {
	buf := &bytes.Buffer{}
	w, err := NewWriter(buf, V1_7)
	if err != nil {
		t.Fatal(err)
	}

	body := []byte("0 0 100 100 re f")
	dict := Dict{"Name": Name("test")}
	_, err = w.WriteStream(dict, body, nil, FilterCompress{})
	if err != nil {
		t.Fatal(err)
	}
	if len(dict) != 1 {
		t.Errorf("stream dictionary argument was modified: %v", dict)
	}

	out := buf.Bytes()
	if !bytes.Contains(out, []byte("/Filter /FlateDecode")) {
		t.Error("missing /Filter entry")
	}

	start := bytes.Index(out, []byte("stream\n"))
	end := bytes.Index(out, []byte("\nendstream"))
	if start < 0 || end < 0 {
		t.Fatal("stream delimiters not found")
	}
	zr, err := zlib.NewReader(bytes.NewReader(out[start+7 : end]))
	if err != nil {
		t.Fatal(err)
	}
	decoded, err := io.ReadAll(zr)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(decoded, body) {
		t.Errorf("got %q, want %q", decoded, body)
	}
}

func TestCloseWithoutPages(t *testing.T) {
	buf := &bytes.Buffer{}
	w, err := NewWriter(buf, V1_7)
	if err != nil {
		t.Fatal(err)
	}
	err = w.Close(&Catalog{}, nil)
	if err == nil {
		t.Error("Close without page tree succeeded")
	}
}

func TestNewWriterBadVersion(t *testing.T) {
	_, err := NewWriter(&bytes.Buffer{}, Version(99))
	if !errors.Is(err, errVersion) {
		t.Errorf("got %v, want errVersion", err)
	}
}
