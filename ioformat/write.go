// SPDX-License-Identifier: MIT
package ioformat

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/joeycumines/go-utilpkg/jsonenc"
)

// WriteResult writes {"result": <2-D number array>} to w. Cells are
// encoded with jsonenc.AppendFloat64, which renders NaN and ±Infinity as
// the quoted strings "NaN"/"Infinity"/"-Infinity" instead of failing the
// way encoding/json.Marshal does on non-finite floats.
func WriteResult(w io.Writer, rows [][]float64) error {
	buf := append([]byte(nil), `{"result":[`...)

	for i, row := range rows {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, '[')
		for j, v := range row {
			if j > 0 {
				buf = append(buf, ',')
			}
			buf = jsonenc.AppendFloat64(buf, v)
		}
		buf = append(buf, ']')
	}

	buf = append(buf, ']', '}')

	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("%w: %v", ErrIOFailure, err)
	}

	return nil
}

// WriteError writes {"error": <string>} to w. A nil or empty-message
// error falls back to "unknown error".
func WriteError(w io.Writer, cause error) error {
	msg := "unknown error"
	if cause != nil && cause.Error() != "" {
		msg = cause.Error()
	}

	payload, err := json.Marshal(struct {
		Error string `json:"error"`
	}{Error: msg})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIOFailure, err)
	}

	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("%w: %v", ErrIOFailure, err)
	}

	return nil
}
