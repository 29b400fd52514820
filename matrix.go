// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"errors"
)

// ErrSingular is returned when inverting a matrix whose
// determinant is zero.
var ErrSingular = errors.New("linear: singular matrix")

// Matrix is a row-major 4x4 matrix of float64.
// The element at row r and column c is m[r*4+c].
type Matrix [16]float64

// ZeroMatrix returns a matrix whose elements are all zero.
func ZeroMatrix() Matrix { return Matrix{} }

// IdentityMatrix returns the identity matrix.
func IdentityMatrix() Matrix {
	return Matrix{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// NewMatrix returns a matrix containing the first 16
// elements of data, in row-major order.
// It panics if len(data) < 16.
func NewMatrix(data []float64) (m Matrix) {
	m.Set(data)
	return
}

// MatrixFromArray returns the matrix stored in a[off:off+16].
func MatrixFromArray(a []float64, off int) Matrix {
	return NewMatrix(a[off : off+16])
}

// At returns the element at row r and column c.
func (m *Matrix) At(r, c int) float64 { return m[r*4+c] }

// AsArray returns the elements of m in row-major order.
func (m *Matrix) AsArray() [16]float64 { return *m }

// ToArrayTo stores the elements of m in a[off:off+16].
func (m *Matrix) ToArrayTo(a []float64, off int) { copy(a[off:off+16], m[:]) }

// Set overwrites the elements of m with the first 16
// elements of data and returns m.
// It panics if len(data) < 16.
func (m *Matrix) Set(data []float64) *Matrix {
	copy(m[:], data[:16])
	return m
}

// CopyFrom sets m to n and returns m.
func (m *Matrix) CopyFrom(n *Matrix) *Matrix {
	*m = *n
	return m
}

// Clone returns a copy of m.
func (m *Matrix) Clone() Matrix { return *m }

// Equals reports whether m and n are exactly equal.
func (m *Matrix) Equals(n *Matrix) bool { return *m == *n }

// IsIdentity reports whether m is exactly the identity
// matrix.
func (m *Matrix) IsIdentity() bool { return *m == IdentityMatrix() }

// Multiply returns m ⋅ n.
func (m *Matrix) Multiply(n *Matrix) (p Matrix) {
	m.MultiplyTo(n, &p)
	return
}

// MultiplyTo sets dst to contain m ⋅ n and returns dst.
// dst may alias m or n.
func (m *Matrix) MultiplyTo(n, dst *Matrix) *Matrix {
	var p Matrix
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			for k := 0; k < 4; k++ {
				p[i*4+j] += m[i*4+k] * n[k*4+j]
			}
		}
	}
	*dst = p
	return dst
}

// Transpose returns the transpose of m.
func (m *Matrix) Transpose() (t Matrix) {
	for i := 0; i < 4; i++ {
		t[i*4+i] = m[i*4+i]
		for j := i + 1; j < 4; j++ {
			t[i*4+j], t[j*4+i] = m[j*4+i], m[i*4+j]
		}
	}
	return
}

// Determinant returns the determinant of m, computed by
// cofactor expansion along the first row.
func (m *Matrix) Determinant() float64 {
	// 2x2 sub-determinants of rows 2 and 3.
	d01 := m[8]*m[13] - m[9]*m[12]
	d02 := m[8]*m[14] - m[10]*m[12]
	d03 := m[8]*m[15] - m[11]*m[12]
	d12 := m[9]*m[14] - m[10]*m[13]
	d13 := m[9]*m[15] - m[11]*m[13]
	d23 := m[10]*m[15] - m[11]*m[14]

	c0 := m[5]*d23 - m[6]*d13 + m[7]*d12
	c1 := -(m[4]*d23 - m[6]*d03 + m[7]*d02)
	c2 := m[4]*d13 - m[5]*d03 + m[7]*d01
	c3 := -(m[4]*d12 - m[5]*d02 + m[6]*d01)

	return m[0]*c0 + m[1]*c1 + m[2]*c2 + m[3]*c3
}

// Invert returns the inverse of m.
// It fails with ErrSingular if the determinant of m is
// exactly zero.
func (m *Matrix) Invert() (inv Matrix, err error) {
	err = m.InvertTo(&inv)
	return
}

// InvertTo sets dst to contain the inverse of m.
// dst may alias m. On failure, dst is left unchanged.
//
// The identity matrix is copied as is. Any other matrix,
// including one that is merely close to the identity,
// goes through the general computation.
func (m *Matrix) InvertTo(dst *Matrix) error {
	if m.IsIdentity() {
		*dst = *m
		return nil
	}
	det := m.Determinant()
	if det == 0 {
		return ErrSingular
	}
	idet := 1 / det
	n := *m
	s0 := n[0]*n[5] - n[1]*n[4]
	s1 := n[0]*n[6] - n[2]*n[4]
	s2 := n[0]*n[7] - n[3]*n[4]
	s3 := n[1]*n[6] - n[2]*n[5]
	s4 := n[1]*n[7] - n[3]*n[5]
	s5 := n[2]*n[7] - n[3]*n[6]
	c0 := n[8]*n[13] - n[9]*n[12]
	c1 := n[8]*n[14] - n[10]*n[12]
	c2 := n[8]*n[15] - n[11]*n[12]
	c3 := n[9]*n[14] - n[10]*n[13]
	c4 := n[9]*n[15] - n[11]*n[13]
	c5 := n[10]*n[15] - n[11]*n[14]
	dst[0] = (c5*n[5] - c4*n[6] + c3*n[7]) * idet
	dst[1] = (-c5*n[1] + c4*n[2] - c3*n[3]) * idet
	dst[2] = (s5*n[13] - s4*n[14] + s3*n[15]) * idet
	dst[3] = (-s5*n[9] + s4*n[10] - s3*n[11]) * idet
	dst[4] = (-c5*n[4] + c2*n[6] - c1*n[7]) * idet
	dst[5] = (c5*n[0] - c2*n[2] + c1*n[3]) * idet
	dst[6] = (-s5*n[12] + s2*n[14] - s1*n[15]) * idet
	dst[7] = (s5*n[8] - s2*n[10] + s1*n[11]) * idet
	dst[8] = (c4*n[4] - c2*n[5] + c0*n[7]) * idet
	dst[9] = (-c4*n[0] + c2*n[1] - c0*n[3]) * idet
	dst[10] = (s4*n[12] - s2*n[13] + s0*n[15]) * idet
	dst[11] = (-s4*n[8] + s2*n[9] - s0*n[11]) * idet
	dst[12] = (-c3*n[4] + c1*n[5] - c0*n[6]) * idet
	dst[13] = (c3*n[0] - c1*n[1] + c0*n[2]) * idet
	dst[14] = (-s3*n[12] + s1*n[13] - s0*n[14]) * idet
	dst[15] = (s3*n[8] - s1*n[9] + s0*n[10]) * idet
	return nil
}
