// Copyright (c) 2026, Sumi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package units supplies the style value type used by paint-time
// properties. Layout resolves most lengths to CSS pixels before
// painting; the values that survive to paint time are those that can
// only be resolved against a box measured during painting, such as
// border radii and background sizing, which may still be percentages.
package units

// Units is the unit of a paint-time [Value].
type Units int32

const (
	// UnitDot is a CSS pixel, the unit all lengths resolve to
	// before the device scale is applied at paint time.
	UnitDot Units = iota

	// UnitPercent is a percentage of a reference length supplied at
	// resolve time, typically a box edge.
	UnitPercent

	// UnitAuto means the value is computed from context rather than
	// specified, as in background-size auto.
	UnitAuto
)

func (u Units) String() string {
	switch u {
	case UnitPercent:
		return "%"
	case UnitAuto:
		return "auto"
	default:
		return "dot"
	}
}

// Value is a paint-time style value with a number and a unit.
type Value struct {
	// Value is the numeric value in terms of Unit.
	Value float32

	// Unit is the unit of Value.
	Unit Units
}

// Dot returns a new value in [UnitDot] units.
func Dot(val float32) Value {
	return Value{Value: val, Unit: UnitDot}
}

// Percent returns a new value in [UnitPercent] units.
func Percent(val float32) Value {
	return Value{Value: val, Unit: UnitPercent}
}

// Auto returns a new [UnitAuto] value.
func Auto() Value {
	return Value{Unit: UnitAuto}
}

// IsAuto reports whether the value is [UnitAuto].
func (v Value) IsAuto() bool {
	return v.Unit == UnitAuto
}

// IsZero reports whether the value resolves to zero for any reference.
func (v Value) IsZero() bool {
	return v.Unit != UnitAuto && v.Value == 0
}

// ToDots resolves the value against the given reference
// length. Percentages resolve as a fraction of ref; auto resolves to
// zero, callers that distinguish auto must check [Value.IsAuto] first.
func (v Value) ToDots(ref float32) float32 {
	switch v.Unit {
	case UnitPercent:
		return v.Value / 100 * ref
	case UnitAuto:
		return 0
	default:
		return v.Value
	}
}
