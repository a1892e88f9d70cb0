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
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewFormXObject(t *testing.T) {
	body := []byte("0 0 1 RG")
	bbox := &Rectangle{URx: 100, URy: 50}
	res := Dict{"Font": Dict{}}

	stm := NewFormXObject(body, bbox, res)

	expected := Dict{
		"Type":      Name("XObject"),
		"Subtype":   Name("Form"),
		"FormType":  Integer(1),
		"BBox":      bbox,
		"Length":    Integer(len(body)),
		"Resources": res,
	}
	if d := cmp.Diff(stm.Dict, expected); d != "" {
		t.Errorf("stream dictionary differs (-got +want):\n%s", d)
	}

	data, err := io.ReadAll(stm.R)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != string(body) {
		t.Errorf("got body %q, want %q", data, body)
	}
}

func TestNewFormXObjectNoResources(t *testing.T) {
	stm := NewFormXObject(nil, &Rectangle{URx: 1, URy: 1}, nil)
	if _, present := stm.Dict["Resources"]; present {
		t.Error("unexpected /Resources entry")
	}
	if stm.Dict["Length"] != Integer(0) {
		t.Errorf("got /Length %v, want 0", stm.Dict["Length"])
	}
}
