// SPDX-License-Identifier: MIT
package vector

// MatrixSource is the minimal read surface VecMatMul needs from a matrix.
// It is satisfied structurally by *matrix.Matrix (package matrix depends on
// package vector, not the other way around, so the dependency stays
// one-directional and this interface is declared on the consumer side).
type MatrixSource interface {
	// Rows returns the logical row count of the source matrix.
	Rows() int
	// Cols returns the logical column count of the source matrix.
	Cols() int
	// Get returns the i-th member vector of the source matrix. When the
	// source is COLUMN-oriented (as M2 is for multiplication), Get(i)
	// is column i and has length Rows().
	Get(i int) (*Vector, error)
}

// Add computes v += other element-wise. Fails with ErrDimensionMismatch
// when the lengths differ. Locks v for write and other for read, in
// ascending creation-id order; if other is v itself, upgrades to a single
// write lock and doubles v in place (v.Add(v) == 2*v).
func (v *Vector) Add(other *Vector) error {
	if v.Length() != other.Length() {
		return ErrDimensionMismatch
	}

	if other == v {
		v.mu.Lock()
		defer v.mu.Unlock()

		for i := range v.data {
			v.data[i] += v.data[i]
		}

		return nil
	}

	// Ascending creation-id lock order: whichever of v/other has the
	// lower id is locked first, regardless of which role (writer/reader)
	// it plays in this call.
	if v.id < other.id {
		v.mu.Lock()
		defer v.mu.Unlock()
		other.mu.RLock()
		defer other.mu.RUnlock()
	} else {
		other.mu.RLock()
		defer other.mu.RUnlock()
		v.mu.Lock()
		defer v.mu.Unlock()
	}

	for i := range v.data {
		v.data[i] += other.data[i]
	}

	return nil
}

// Dot computes the inner product of v and other. Fails with
// ErrDimensionMismatch on length mismatch. Read-locks both vectors in
// ascending creation-id order; self-dot (v.Dot(v)) read-locks once and
// returns the sum of squares.
func (v *Vector) Dot(other *Vector) (float64, error) {
	if v.Length() != other.Length() {
		return 0, ErrDimensionMismatch
	}

	if other == v {
		v.mu.RLock()
		defer v.mu.RUnlock()

		var sum float64
		for _, x := range v.data {
			sum += x * x
		}

		return sum, nil
	}

	first, second := lockOrder(v, other)
	first.mu.RLock()
	defer first.mu.RUnlock()
	second.mu.RLock()
	defer second.mu.RUnlock()

	var sum float64
	for i := range v.data {
		sum += v.data[i] * other.data[i]
	}

	return sum, nil
}

// VecMatMul replaces v's data with v * m, treating v as a row vector.
// Fails with ErrOrientation when v is not ROW-oriented, and with
// ErrDimensionMismatch when v.Length() != m.Rows().
//
// Locking discipline: this is a single read pass over m's columns, each
// acquired and released independently (writes go to a private result
// buffer, never to v), followed by one write-lock acquisition on v alone
// to install the new data. v is never read-locked while later being
// write-locked in the same call — that upgrade is not supported by a
// standard reader-writer lock and would deadlock against a concurrent
// writer.
func (v *Vector) VecMatMul(m MatrixSource) error {
	if v.Orientation() != Row {
		return ErrOrientation
	}

	rows := m.Rows()
	if v.Length() != rows {
		return ErrDimensionMismatch
	}

	// Phase 1: snapshot v's current data once. No lock on v is held past
	// this call.
	lhs := v.Snapshot()

	// Phase 2: read each column independently and accumulate into a
	// private result buffer.
	cols := m.Cols()
	result := make([]float64, cols)
	for j := 0; j < cols; j++ {
		col, err := m.Get(j)
		if err != nil {
			return err
		}

		col.mu.RLock()
		var sum float64
		for k := 0; k < rows; k++ {
			sum += lhs[k] * col.data[k]
		}
		col.mu.RUnlock()

		result[j] = sum
	}

	// Phase 3: install the result under a single write lock on v alone.
	v.mu.Lock()
	v.data = result
	v.mu.Unlock()

	return nil
}
