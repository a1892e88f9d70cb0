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
)

// StreamFilter encodes stream data before it is written to a PDF
// file.
type StreamFilter interface {
	// Encode returns the encoded form of data.
	Encode(data []byte) ([]byte, error)

	// Name returns the filter name for the /Filter entry of the
	// stream dictionary.
	Name() Name
}

// FilterCompress selects FlateDecode compression for a stream.
type FilterCompress struct{}

// Encode implements the [StreamFilter] interface.
func (f FilterCompress) Encode(data []byte) ([]byte, error) {
	buf := &bytes.Buffer{}
	zw := zlib.NewWriter(buf)
	_, err := zw.Write(data)
	if err != nil {
		return nil, err
	}
	err = zw.Close()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Name implements the [StreamFilter] interface.
func (f FilterCompress) Name() Name {
	return "FlateDecode"
}
