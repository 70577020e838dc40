package isa

import (
	"math"

	"github.com/atmo/atmogo/units"
)

// Transcendentals are evaluated at double precision and rounded back to T.

func pow[T units.Float](x, y T) T { return T(math.Pow(float64(x), float64(y))) }

func exp[T units.Float](x T) T { return T(math.Exp(float64(x))) }

func log[T units.Float](x T) T { return T(math.Log(float64(x))) }

func sqrt[T units.Float](x T) T { return T(math.Sqrt(float64(x))) }
