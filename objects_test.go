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
	"strings"
	"testing"
	"time"
)

func formatObject(t *testing.T, obj Object) string {
	t.Helper()
	buf := &bytes.Buffer{}
	var err error
	if obj == nil {
		_, err = buf.WriteString("null")
	} else {
		err = obj.PDF(buf)
	}
	if err != nil {
		t.Fatalf("PDF() failed: %v", err)
	}
	return buf.String()
}

func TestObjectsPDF(t *testing.T) {
	cases := []struct {
		obj      Object
		expected string
	}{
		{nil, "null"},
		{Bool(true), "true"},
		{Bool(false), "false"},
		{Integer(0), "0"},
		{Integer(-4), "-4"},
		{Real(1.5), "1.5"},
		{Real(2), "2."},
		{Number(2), "2"},
		{Number(0.5), "0.5"},
		{String("hello"), "(hello)"},
		{String("he(ll)o"), "(he(ll)o)"},
		{String("he(llo"), `(he\(llo)`},
		{String(`back\slash`), `(back\\slash)`},
		{String("\x00\x01\x02"), "<000102>"},
		{Name("Font"), "/Font"},
		{Name("A B"), "/A#20B"},
		{Name("1/2"), "/1#2f2"},
		{Name("ab#c"), "/ab#23c"},
		{Name(""), "/"},
		{Array{Integer(1), Name("x"), nil}, "[1 /x null]"},
		{Dict(nil), "null"},
		{Dict{}, "<<\n>>"},
		{&Reference{Number: 3}, "3 0 R"},
		{&Reference{Number: 3, Generation: 1}, "3 1 R"},
		{&Rectangle{URx: 100, URy: 50}, "[0 0 100 50]"},
		{&Rectangle{LLx: 0.5, URx: 12.345, URy: 7}, "[0.5 0 12.35 7]"},
	}
	for _, test := range cases {
		got := formatObject(t, test.obj)
		if got != test.expected {
			t.Errorf("%#v: got %q, want %q", test.obj, got, test.expected)
		}
	}
}

func TestDictKeyOrder(t *testing.T) {
	d := Dict{
		"Gamma": Integer(3),
		"Alpha": Integer(1),
		"Beta":  Integer(2),
	}
	got := formatObject(t, d)
	expected := "<<\n/Alpha 1\n/Beta 2\n/Gamma 3\n>>"
	if got != expected {
		t.Errorf("got %q, want %q", got, expected)
	}
}

func TestStreamPDF(t *testing.T) {
	body := "BT /F1 12 Tf ET"
	stm := &Stream{
		Dict: Dict{"Length": Integer(len(body))},
		R:    strings.NewReader(body),
	}
	got := formatObject(t, stm)
	expected := "<<\n/Length 15\n>>\nstream\nBT /F1 12 Tf ET\nendstream"
	if got != expected {
		t.Errorf("got %q, want %q", got, expected)
	}
}

func TestTextString(t *testing.T) {
	s := TextString("hello")
	if string(s) != "hello" {
		t.Errorf("ASCII text re-encoded: got %q", string(s))
	}

	s = TextString("Grüße")
	if len(s) < 2 || s[0] != 0xFE || s[1] != 0xFF {
		t.Errorf("missing UTF-16 byte order mark: % x", []byte(s))
	}
	if len(s) != 2+2*5 {
		t.Errorf("got %d bytes, want %d", len(s), 2+2*5)
	}
}

func TestDate(t *testing.T) {
	zone := time.FixedZone("", -8*60*60)
	when := time.Date(2010, 12, 24, 16, 30, 12, 0, zone)
	got := string(Date(when))
	expected := "D:20101224163012-08'00"
	if got != expected {
		t.Errorf("got %q, want %q", got, expected)
	}
}

func TestRectangle(t *testing.T) {
	r := &Rectangle{LLx: 10, LLy: 20, URx: 110, URy: 70}
	if r.Dx() != 100 || r.Dy() != 50 {
		t.Errorf("got %g x %g, want 100 x 50", r.Dx(), r.Dy())
	}
	other := &Rectangle{LLx: 10.2, LLy: 19.9, URx: 110, URy: 70.4}
	if !r.NearlyEqual(other, 0.5) {
		t.Error("NearlyEqual(…, 0.5) = false, want true")
	}
	if r.NearlyEqual(other, 0.1) {
		t.Error("NearlyEqual(…, 0.1) = true, want false")
	}
	if r.IsZero() {
		t.Error("IsZero() = true, want false")
	}
	if !new(Rectangle).IsZero() {
		t.Error("IsZero() = false, want true")
	}
}

func TestVersion(t *testing.T) {
	cases := []struct {
		ver      Version
		expected string
		ok       bool
	}{
		{V1_0, "1.0", true},
		{V1_7, "1.7", true},
		{V2_0, "2.0", true},
		{Version(99), "", false},
	}
	for _, test := range cases {
		got, err := test.ver.ToString()
		if (err == nil) != test.ok {
			t.Errorf("%d: unexpected error state: %v", int(test.ver), err)
			continue
		}
		if test.ok && got != test.expected {
			t.Errorf("%d: got %q, want %q", int(test.ver), got, test.expected)
		}
	}
}
