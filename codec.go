// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Vectors and matrices are encoded as flow sequences
// holding their flat array form, e.g.
//
//	position: [1, 2, 3]
//	transform: [1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1]

func encodeFlow(s []float64) (*yaml.Node, error) {
	var n yaml.Node
	if err := n.Encode(s); err != nil {
		return nil, err
	}
	n.Style = yaml.FlowStyle
	return &n, nil
}

func decodeFlat(value *yaml.Node, dst []float64, name string) error {
	var s []float64
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("linear: decoding %s: %w", name, err)
	}
	if len(s) != len(dst) {
		return fmt.Errorf("linear: %s needs %d elements, have %d", name, len(dst), len(s))
	}
	copy(dst, s)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (v Vector2) MarshalYAML() (any, error) {
	a := v.ToArray()
	return encodeFlow(a[:])
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (v *Vector2) UnmarshalYAML(value *yaml.Node) error {
	var a [2]float64
	if err := decodeFlat(value, a[:], "Vector2"); err != nil {
		return err
	}
	*v = Vector2FromArray(a[:], 0)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (v Vector3) MarshalYAML() (any, error) {
	a := v.ToArray()
	return encodeFlow(a[:])
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (v *Vector3) UnmarshalYAML(value *yaml.Node) error {
	var a [3]float64
	if err := decodeFlat(value, a[:], "Vector3"); err != nil {
		return err
	}
	*v = Vector3FromArray(a[:], 0)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (m Matrix) MarshalYAML() (any, error) { return encodeFlow(m[:]) }

// UnmarshalYAML implements yaml.Unmarshaler.
func (m *Matrix) UnmarshalYAML(value *yaml.Node) error {
	return decodeFlat(value, m[:], "Matrix")
}
