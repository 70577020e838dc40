package airspeed

import (
	"math"

	"github.com/atmo/atmogo/units"
)

// Transcendentals route through float64, as in package isa.

func pow[T units.Float](x, y T) T { return T(math.Pow(float64(x), float64(y))) }

func sqrt[T units.Float](x T) T { return T(math.Sqrt(float64(x))) }
