// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"math"
)

// Vector3 is a 3-component vector of float64.
type Vector3 struct {
	X, Y, Z float64
}

// ZeroVector3 returns the vector [0 0 0].
func ZeroVector3() Vector3 { return Vector3{} }

// OneVector3 returns the vector [1 1 1].
func OneVector3() Vector3 { return Vector3{1, 1, 1} }

// Vector3FromArray returns the vector stored in a[off:off+3].
func Vector3FromArray(a []float64, off int) Vector3 {
	return Vector3{a[off], a[off+1], a[off+2]}
}

// Vector3FromArrayTo sets dst to the vector stored in
// a[off:off+3] and returns dst.
func Vector3FromArrayTo(a []float64, off int, dst *Vector3) *Vector3 {
	dst.X = a[off]
	dst.Y = a[off+1]
	dst.Z = a[off+2]
	return dst
}

// Set sets the components of v and returns v.
func (v *Vector3) Set(x, y, z float64) *Vector3 {
	v.X, v.Y, v.Z = x, y, z
	return v
}

// CopyFrom sets v to w and returns v.
func (v *Vector3) CopyFrom(w Vector3) *Vector3 {
	*v = w
	return v
}

// ToArray returns the components of v in order.
func (v Vector3) ToArray() [3]float64 { return [3]float64{v.X, v.Y, v.Z} }

// ToArrayTo stores the components of v in a[off:off+3].
func (v Vector3) ToArrayTo(a []float64, off int) {
	a[off] = v.X
	a[off+1] = v.Y
	a[off+2] = v.Z
}

// Add returns v + w.
func (v Vector3) Add(w Vector3) Vector3 {
	return Vector3{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}

// AddTo sets dst to contain v + w.
func (v Vector3) AddTo(w Vector3, dst *Vector3) *Vector3 {
	*dst = v.Add(w)
	return dst
}

// AddInPlace sets v to contain v + w.
func (v *Vector3) AddInPlace(w Vector3) *Vector3 { return v.AddTo(w, v) }

// Subtract returns v - w.
func (v Vector3) Subtract(w Vector3) Vector3 {
	return Vector3{v.X - w.X, v.Y - w.Y, v.Z - w.Z}
}

// SubtractTo sets dst to contain v - w.
func (v Vector3) SubtractTo(w Vector3, dst *Vector3) *Vector3 {
	*dst = v.Subtract(w)
	return dst
}

// SubtractInPlace sets v to contain v - w.
func (v *Vector3) SubtractInPlace(w Vector3) *Vector3 { return v.SubtractTo(w, v) }

// Multiply returns the component-wise product of v and w.
func (v Vector3) Multiply(w Vector3) Vector3 {
	return Vector3{v.X * w.X, v.Y * w.Y, v.Z * w.Z}
}

// MultiplyTo sets dst to contain the component-wise
// product of v and w.
func (v Vector3) MultiplyTo(w Vector3, dst *Vector3) *Vector3 {
	*dst = v.Multiply(w)
	return dst
}

// MultiplyInPlace sets v to contain the component-wise
// product of v and w.
func (v *Vector3) MultiplyInPlace(w Vector3) *Vector3 { return v.MultiplyTo(w, v) }

// Divide returns the component-wise quotient of v and w.
func (v Vector3) Divide(w Vector3) Vector3 {
	return Vector3{v.X / w.X, v.Y / w.Y, v.Z / w.Z}
}

// DivideTo sets dst to contain the component-wise
// quotient of v and w.
func (v Vector3) DivideTo(w Vector3, dst *Vector3) *Vector3 {
	*dst = v.Divide(w)
	return dst
}

// DivideInPlace sets v to contain the component-wise
// quotient of v and w.
func (v *Vector3) DivideInPlace(w Vector3) *Vector3 { return v.DivideTo(w, v) }

// Scale returns s ⋅ v.
func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

// ScaleTo sets dst to contain s ⋅ v.
func (v Vector3) ScaleTo(s float64, dst *Vector3) *Vector3 {
	*dst = v.Scale(s)
	return dst
}

// ScaleInPlace sets v to contain s ⋅ v.
func (v *Vector3) ScaleInPlace(s float64) *Vector3 { return v.ScaleTo(s, v) }

// Equals reports whether v and w are exactly equal.
func (v Vector3) Equals(w Vector3) bool { return v == w }

// Dot returns v ⋅ w.
func (v Vector3) Dot(w Vector3) float64 { return v.X*w.X + v.Y*w.Y + v.Z*w.Z }

// Cross returns v × w.
func (v Vector3) Cross(w Vector3) Vector3 {
	return Vector3{
		v.Y*w.Z - v.Z*w.Y,
		v.Z*w.X - v.X*w.Z,
		v.X*w.Y - v.Y*w.X,
	}
}

// CrossTo sets dst to contain v × w.
func (v Vector3) CrossTo(w Vector3, dst *Vector3) *Vector3 {
	*dst = v.Cross(w)
	return dst
}

// Length returns the length of v.
func (v Vector3) Length() float64 { return math.Sqrt(v.LengthSquared()) }

// LengthSquared returns the squared length of v.
func (v Vector3) LengthSquared() float64 { return v.Dot(v) }

// Normalize returns v normalized.
// If v has length 0 or 1, it is returned unchanged.
func (v Vector3) Normalize() Vector3 {
	l := v.Length()
	if l == 0 || l == 1 {
		return v
	}
	return v.Scale(1 / l)
}

// NormalizeTo sets dst to contain v normalized.
func (v Vector3) NormalizeTo(dst *Vector3) *Vector3 {
	*dst = v.Normalize()
	return dst
}

// NormalizeInPlace normalizes v.
func (v *Vector3) NormalizeInPlace() *Vector3 { return v.NormalizeTo(v) }

// Floor returns v with each component rounded down.
func (v Vector3) Floor() Vector3 {
	return Vector3{math.Floor(v.X), math.Floor(v.Y), math.Floor(v.Z)}
}

// DotVector3 returns v ⋅ w.
func DotVector3(v, w Vector3) float64 { return v.Dot(w) }

// CrossVector3 returns v × w.
func CrossVector3(v, w Vector3) Vector3 { return v.Cross(w) }

// NormalizeVector3 returns v normalized.
func NormalizeVector3(v Vector3) Vector3 { return v.Normalize() }

// NormalizeVector3To sets dst to contain v normalized.
func NormalizeVector3To(v Vector3, dst *Vector3) *Vector3 { return v.NormalizeTo(dst) }

// HermiteVector3 interpolates between value1 and value2
// using a cubic Hermite spline with the given tangents.
func HermiteVector3(value1, tangent1, value2, tangent2 Vector3, amount float64) Vector3 {
	h00, h01, h10, h11 := hermite(amount)
	return Vector3{
		value1.X*h00 + value2.X*h01 + tangent1.X*h10 + tangent2.X*h11,
		value1.Y*h00 + value2.Y*h01 + tangent1.Y*h10 + tangent2.Y*h11,
		value1.Z*h00 + value2.Z*h01 + tangent1.Z*h10 + tangent2.Z*h11,
	}
}

// CatmullRomVector3 interpolates between v2 and v3 using
// a Catmull-Rom spline through v1, v2, v3 and v4.
// The curve passes through v2 at amount 0 and through v3
// at amount 1.
func CatmullRomVector3(v1, v2, v3, v4 Vector3, amount float64) Vector3 {
	t2 := amount * amount
	t3 := amount * t2
	f := func(p0, p1, p2, p3 float64) float64 {
		return 0.5 * (2*p1 +
			(-p0+p2)*amount +
			(2*p0-5*p1+4*p2-p3)*t2 +
			(-p0+3*p1-3*p2+p3)*t3)
	}
	return Vector3{
		f(v1.X, v2.X, v3.X, v4.X),
		f(v1.Y, v2.Y, v3.Y, v4.Y),
		f(v1.Z, v2.Z, v3.Z, v4.Z),
	}
}

// LerpVector3 returns start + (end - start) ⋅ amount.
// As with LerpVector2, the result at amount 1 may differ
// from end when end - start is not exact.
func LerpVector3(start, end Vector3, amount float64) (v Vector3) {
	LerpVector3To(start, end, amount, &v)
	return
}

// LerpVector3To sets dst to contain
// start + (end - start) ⋅ amount.
func LerpVector3To(start, end Vector3, amount float64, dst *Vector3) *Vector3 {
	dst.X = start.X + (end.X-start.X)*amount
	dst.Y = start.Y + (end.Y-start.Y)*amount
	dst.Z = start.Z + (end.Z-start.Z)*amount
	return dst
}
