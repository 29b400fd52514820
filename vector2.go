// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package linear implements vector and matrix math for
// graphics and game code.
//
// Operations come in three flavors. The plain form (e.g.,
// Add) returns a new value and leaves its operands alone.
// The To form (e.g., AddTo) writes the result into a
// caller-supplied destination and returns it. The InPlace
// form (e.g., AddInPlace) overwrites the receiver.
package linear

import (
	"math"
)

// Vector2 is a 2-component vector of float64.
type Vector2 struct {
	X, Y float64
}

// ZeroVector2 returns the vector [0 0].
func ZeroVector2() Vector2 { return Vector2{} }

// OneVector2 returns the vector [1 1].
func OneVector2() Vector2 { return Vector2{1, 1} }

// Vector2FromArray returns the vector stored in a[off:off+2].
func Vector2FromArray(a []float64, off int) Vector2 {
	return Vector2{a[off], a[off+1]}
}

// Vector2FromArrayTo sets dst to the vector stored in
// a[off:off+2] and returns dst.
func Vector2FromArrayTo(a []float64, off int, dst *Vector2) *Vector2 {
	dst.X = a[off]
	dst.Y = a[off+1]
	return dst
}

// Set sets the components of v and returns v.
func (v *Vector2) Set(x, y float64) *Vector2 {
	v.X, v.Y = x, y
	return v
}

// CopyFrom sets v to w and returns v.
func (v *Vector2) CopyFrom(w Vector2) *Vector2 {
	*v = w
	return v
}

// ToArray returns the components of v in order.
func (v Vector2) ToArray() [2]float64 { return [2]float64{v.X, v.Y} }

// ToArrayTo stores the components of v in a[off:off+2].
func (v Vector2) ToArrayTo(a []float64, off int) {
	a[off] = v.X
	a[off+1] = v.Y
}

// Add returns v + w.
func (v Vector2) Add(w Vector2) Vector2 {
	return Vector2{v.X + w.X, v.Y + w.Y}
}

// AddTo sets dst to contain v + w.
func (v Vector2) AddTo(w Vector2, dst *Vector2) *Vector2 {
	*dst = v.Add(w)
	return dst
}

// AddInPlace sets v to contain v + w.
func (v *Vector2) AddInPlace(w Vector2) *Vector2 { return v.AddTo(w, v) }

// Subtract returns v - w.
func (v Vector2) Subtract(w Vector2) Vector2 {
	return Vector2{v.X - w.X, v.Y - w.Y}
}

// SubtractTo sets dst to contain v - w.
func (v Vector2) SubtractTo(w Vector2, dst *Vector2) *Vector2 {
	*dst = v.Subtract(w)
	return dst
}

// SubtractInPlace sets v to contain v - w.
func (v *Vector2) SubtractInPlace(w Vector2) *Vector2 { return v.SubtractTo(w, v) }

// Multiply returns the component-wise product of v and w.
func (v Vector2) Multiply(w Vector2) Vector2 {
	return Vector2{v.X * w.X, v.Y * w.Y}
}

// MultiplyTo sets dst to contain the component-wise
// product of v and w.
func (v Vector2) MultiplyTo(w Vector2, dst *Vector2) *Vector2 {
	*dst = v.Multiply(w)
	return dst
}

// MultiplyInPlace sets v to contain the component-wise
// product of v and w.
func (v *Vector2) MultiplyInPlace(w Vector2) *Vector2 { return v.MultiplyTo(w, v) }

// Divide returns the component-wise quotient of v and w.
// Zero components in w produce infinities or NaNs.
func (v Vector2) Divide(w Vector2) Vector2 {
	return Vector2{v.X / w.X, v.Y / w.Y}
}

// DivideTo sets dst to contain the component-wise
// quotient of v and w.
func (v Vector2) DivideTo(w Vector2, dst *Vector2) *Vector2 {
	*dst = v.Divide(w)
	return dst
}

// DivideInPlace sets v to contain the component-wise
// quotient of v and w.
func (v *Vector2) DivideInPlace(w Vector2) *Vector2 { return v.DivideTo(w, v) }

// Scale returns s ⋅ v.
func (v Vector2) Scale(s float64) Vector2 {
	return Vector2{v.X * s, v.Y * s}
}

// ScaleTo sets dst to contain s ⋅ v.
func (v Vector2) ScaleTo(s float64, dst *Vector2) *Vector2 {
	*dst = v.Scale(s)
	return dst
}

// ScaleInPlace sets v to contain s ⋅ v.
func (v *Vector2) ScaleInPlace(s float64) *Vector2 { return v.ScaleTo(s, v) }

// Equals reports whether v and w are exactly equal.
func (v Vector2) Equals(w Vector2) bool { return v == w }

// Dot returns v ⋅ w.
func (v Vector2) Dot(w Vector2) float64 { return v.X*w.X + v.Y*w.Y }

// Length returns the length of v.
func (v Vector2) Length() float64 { return math.Sqrt(v.LengthSquared()) }

// LengthSquared returns the squared length of v.
func (v Vector2) LengthSquared() float64 { return v.Dot(v) }

// Normalize returns v normalized.
// If v has length 0 or 1, it is returned unchanged.
func (v Vector2) Normalize() Vector2 {
	l := v.Length()
	if l == 0 || l == 1 {
		return v
	}
	return v.Scale(1 / l)
}

// NormalizeTo sets dst to contain v normalized.
func (v Vector2) NormalizeTo(dst *Vector2) *Vector2 {
	*dst = v.Normalize()
	return dst
}

// NormalizeInPlace normalizes v.
func (v *Vector2) NormalizeInPlace() *Vector2 { return v.NormalizeTo(v) }

// Floor returns v with each component rounded down.
func (v Vector2) Floor() Vector2 {
	return Vector2{math.Floor(v.X), math.Floor(v.Y)}
}

// HermiteVector2 interpolates between value1 and value2
// using a cubic Hermite spline with the given tangents.
// amount is expected to lie in [0, 1], but this is not
// enforced.
func HermiteVector2(value1, tangent1, value2, tangent2 Vector2, amount float64) Vector2 {
	h00, h01, h10, h11 := hermite(amount)
	return Vector2{
		value1.X*h00 + value2.X*h01 + tangent1.X*h10 + tangent2.X*h11,
		value1.Y*h00 + value2.Y*h01 + tangent1.Y*h10 + tangent2.Y*h11,
	}
}

// LerpVector2 returns start + (end - start) ⋅ amount.
// The result equals start exactly at amount 0. At amount 1
// it equals end only when end - start is exact, which may
// not hold for operands of very different magnitudes.
func LerpVector2(start, end Vector2, amount float64) Vector2 {
	return Vector2{
		start.X + (end.X-start.X)*amount,
		start.Y + (end.Y-start.Y)*amount,
	}
}

// PointInTriangle reports whether p lies strictly inside
// the triangle p0 p1 p2. Points on an edge are outside.
// The winding of the triangle does not matter.
func PointInTriangle(p, p0, p1, p2 Vector2) bool {
	a := 0.5 * (-p1.Y*p2.X + p0.Y*(-p1.X+p2.X) + p0.X*(p1.Y-p2.Y) + p1.X*p2.Y)
	sign := 1.0
	if a < 0 {
		sign = -1
	}
	s := (p0.Y*p2.X - p0.X*p2.Y + (p2.Y-p0.Y)*p.X + (p0.X-p2.X)*p.Y) * sign
	t := (p0.X*p1.Y - p0.Y*p1.X + (p0.Y-p1.Y)*p.X + (p1.X-p0.X)*p.Y) * sign
	return s > 0 && t > 0 && s+t < 2*a*sign
}

// hermite returns the cubic Hermite basis functions
// evaluated at t.
func hermite(t float64) (h00, h01, h10, h11 float64) {
	t2 := t * t
	t3 := t * t2
	h00 = 2*t3 - 3*t2 + 1
	h01 = -2*t3 + 3*t2
	h10 = t3 - 2*t2 + t
	h11 = t3 - t2
	return
}
