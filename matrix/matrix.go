// SPDX-License-Identifier: MIT
// Package matrix provides the Matrix primitive: an ordered sequence of
// vector.Vector values sharing one orientation, convertible to and from a
// caller's row-major 2-D float64 array.
//
// A Matrix never stores its own orientation tag — it is always derived
// from a member vector, so the matrix cannot skew out of sync with its
// vectors if reloaded concurrently (see Orientation).
package matrix

import (
	"sync"

	"github.com/katalvlaran/fatiguemat/vector"
)

// Matrix is an ordered sequence of vectors that all share one orientation.
// M1 and M2, the evaluator's two long-lived staging slots, are *Matrix
// values whose contents are replaced wholesale on every operator.
//
// The zero value is ready to use as an empty matrix.
type Matrix struct {
	mu      sync.RWMutex
	vectors []*vector.Vector
}

// New returns an empty Matrix, ready for LoadRowMajor or LoadColumnMajor.
func New() *Matrix {
	return &Matrix{}
}

// LoadRowMajor replaces the matrix's contents with one ROW-oriented vector
// per input row, copying the input so the matrix never aliases caller
// storage. Fails with ErrInvalidArgument on a nil or ragged input.
func (m *Matrix) LoadRowMajor(rows [][]float64) error {
	if rows == nil {
		return ErrInvalidArgument
	}

	if len(rows) > 0 {
		width := len(rows[0])
		for _, row := range rows {
			if len(row) != width {
				return ErrInvalidArgument
			}
		}
	}

	vectors := make([]*vector.Vector, len(rows))
	for i, row := range rows {
		v, err := vector.New(row, vector.Row)
		if err != nil {
			return err
		}
		vectors[i] = v
	}

	m.mu.Lock()
	m.vectors = vectors
	m.mu.Unlock()

	return nil
}

// LoadColumnMajor stores a caller-provided row-major 2-D array as one
// COLUMN-oriented vector per input column — the data is transposed on
// load. Fails with ErrInvalidArgument on a nil or ragged input.
func (m *Matrix) LoadColumnMajor(rows [][]float64) error {
	if rows == nil {
		return ErrInvalidArgument
	}

	if len(rows) == 0 {
		m.mu.Lock()
		m.vectors = nil
		m.mu.Unlock()

		return nil
	}

	width := len(rows[0])
	for _, row := range rows {
		if len(row) != width {
			return ErrInvalidArgument
		}
	}

	vectors := make([]*vector.Vector, width)
	for c := 0; c < width; c++ {
		col := make([]float64, len(rows))
		for r, row := range rows {
			col[r] = row[c]
		}

		v, err := vector.New(col, vector.Column)
		if err != nil {
			return err
		}
		vectors[c] = v
	}

	m.mu.Lock()
	m.vectors = vectors
	m.mu.Unlock()

	return nil
}

// ReadRowMajor returns a freshly allocated row-major copy of the matrix,
// regardless of internal orientation — a COLUMN-oriented matrix is
// transposed on read. Each member vector is read-locked only while that
// vector is copied; the locks are taken one vector at a time, not all at
// once, so the copy is consistent per vector but not across vectors that
// are being written concurrently.
func (m *Matrix) ReadRowMajor() [][]float64 {
	m.mu.RLock()
	vectors := m.vectors
	m.mu.RUnlock()

	if len(vectors) == 0 {
		return [][]float64{}
	}

	orientation := vectors[0].Orientation()

	if orientation == vector.Row {
		out := make([][]float64, len(vectors))
		for i, v := range vectors {
			out[i] = v.Snapshot()
		}

		return out
	}

	// COLUMN-oriented: vectors are columns, so transpose on read.
	rows := vectors[0].Length()
	cols := len(vectors)
	colData := make([][]float64, cols)
	for c, v := range vectors {
		colData[c] = v.Snapshot()
	}

	out := make([][]float64, rows)
	for r := 0; r < rows; r++ {
		rowData := make([]float64, cols)
		for c := 0; c < cols; c++ {
			rowData[c] = colData[c][r]
		}
		out[r] = rowData
	}

	return out
}

// Get returns the i-th member vector. Fails with ErrOutOfBounds when i is
// outside [0, Count()).
func (m *Matrix) Get(i int) (*vector.Vector, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if i < 0 || i >= len(m.vectors) {
		return nil, ErrOutOfBounds
	}

	return m.vectors[i], nil
}

// Count returns the number of member vectors in the matrix's ordered
// sequence (this is the "length()" accessor from the component design).
func (m *Matrix) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.vectors)
}

// Orientation returns the matrix's current orientation, derived from a
// member vector rather than stored — an empty matrix reports Row.
func (m *Matrix) Orientation() vector.Orientation {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if len(m.vectors) == 0 {
		return vector.Row
	}

	return m.vectors[0].Orientation()
}

// Rows returns the logical row count: len(vectors) when ROW-oriented, or
// the length of any member vector when COLUMN-oriented.
func (m *Matrix) Rows() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if len(m.vectors) == 0 {
		return 0
	}
	if m.vectors[0].Orientation() == vector.Row {
		return len(m.vectors)
	}

	return m.vectors[0].Length()
}

// Cols returns the logical column count: the length of any member vector
// when ROW-oriented, or len(vectors) when COLUMN-oriented.
func (m *Matrix) Cols() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if len(m.vectors) == 0 {
		return 0
	}
	if m.vectors[0].Orientation() == vector.Row {
		return m.vectors[0].Length()
	}

	return len(m.vectors)
}
