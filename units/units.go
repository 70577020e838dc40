// Package units defines dimensioned scalar types for atmosphere and airspeed
// calculations.
//
// Each type wraps a single floating-point value tagged with its physical
// dimension, so quantities of different dimensions cannot be mixed at a call
// boundary: a Pascals value cannot be passed where Kelvin is expected. The
// only arithmetic between two values is Ratio, which divides quantities of
// the same dimension into a dimensionless scalar.
//
// All types are generic over float32 and float64; formulas written against
// them behave identically at either precision.
package units

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Float constrains the numeric precision of a dimensioned value.
type Float = constraints.Float

// Metres is a length, used here as pressure altitude above mean sea level.
type Metres[T Float] struct{ v T }

// NewMetres returns v tagged as metres.
func NewMetres[T Float](v T) Metres[T] { return Metres[T]{v} }

// V returns the value in metres.
func (m Metres[T]) V() T { return m.v }

// Ratio returns the dimensionless ratio m / d.
func (m Metres[T]) Ratio(d Metres[T]) T { return m.v / d.v }

func (m Metres[T]) String() string { return fmt.Sprintf("%v m", m.v) }

// Pascals is a pressure.
type Pascals[T Float] struct{ v T }

// NewPascals returns v tagged as Pascals.
func NewPascals[T Float](v T) Pascals[T] { return Pascals[T]{v} }

// V returns the value in Pascals.
func (p Pascals[T]) V() T { return p.v }

// Ratio returns the dimensionless ratio p / d.
func (p Pascals[T]) Ratio(d Pascals[T]) T { return p.v / d.v }

func (p Pascals[T]) String() string { return fmt.Sprintf("%v Pa", p.v) }

// Kelvin is a thermodynamic temperature.
type Kelvin[T Float] struct{ v T }

// NewKelvin returns v tagged as Kelvin.
func NewKelvin[T Float](v T) Kelvin[T] { return Kelvin[T]{v} }

// V returns the value in Kelvin.
func (k Kelvin[T]) V() T { return k.v }

// Ratio returns the dimensionless ratio k / d.
func (k Kelvin[T]) Ratio(d Kelvin[T]) T { return k.v / d.v }

func (k Kelvin[T]) String() string { return fmt.Sprintf("%v K", k.v) }

// MetresPerSecond is a speed.
type MetresPerSecond[T Float] struct{ v T }

// NewMetresPerSecond returns v tagged as metres per second.
func NewMetresPerSecond[T Float](v T) MetresPerSecond[T] { return MetresPerSecond[T]{v} }

// V returns the value in metres per second.
func (s MetresPerSecond[T]) V() T { return s.v }

// Ratio returns the dimensionless ratio s / d, e.g. a Mach number when d is
// the local speed of sound.
func (s MetresPerSecond[T]) Ratio(d MetresPerSecond[T]) T { return s.v / d.v }

func (s MetresPerSecond[T]) String() string { return fmt.Sprintf("%v m/s", s.v) }

// MetresPerSecondSquared is an acceleration.
type MetresPerSecondSquared[T Float] struct{ v T }

// NewMetresPerSecondSquared returns v tagged as metres per second squared.
func NewMetresPerSecondSquared[T Float](v T) MetresPerSecondSquared[T] {
	return MetresPerSecondSquared[T]{v}
}

// V returns the value in metres per second squared.
func (a MetresPerSecondSquared[T]) V() T { return a.v }

// Ratio returns the dimensionless ratio a / d.
func (a MetresPerSecondSquared[T]) Ratio(d MetresPerSecondSquared[T]) T { return a.v / d.v }

func (a MetresPerSecondSquared[T]) String() string { return fmt.Sprintf("%v m/s^2", a.v) }

// KilogramsPerCubicMetre is a density.
type KilogramsPerCubicMetre[T Float] struct{ v T }

// NewKilogramsPerCubicMetre returns v tagged as kilograms per cubic metre.
func NewKilogramsPerCubicMetre[T Float](v T) KilogramsPerCubicMetre[T] {
	return KilogramsPerCubicMetre[T]{v}
}

// V returns the value in kilograms per cubic metre.
func (d KilogramsPerCubicMetre[T]) V() T { return d.v }

// Ratio returns the dimensionless ratio d / e, e.g. the relative density
// sigma when e is the sea level density.
func (d KilogramsPerCubicMetre[T]) Ratio(e KilogramsPerCubicMetre[T]) T { return d.v / e.v }

func (d KilogramsPerCubicMetre[T]) String() string { return fmt.Sprintf("%v kg/m^3", d.v) }
