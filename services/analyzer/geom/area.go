package geom

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Exact unit conversion constants.
const (
	SqmPerAcre = 4046.8564224
	SqftPerSqm = 10.7639104167
)

// RingArea returns the enclosed area of a closed planar ring in the square of
// its coordinate unit. The result is non-negative regardless of winding; a
// degenerate ring yields zero.
func RingArea(ring orb.Ring) float64 {
	return math.Abs(planar.Area(ring))
}

// SqmToAcres converts square meters to acres.
func SqmToAcres(sqm float64) float64 { return sqm / SqmPerAcre }

// AcresToSqm converts acres to square meters.
func AcresToSqm(acres float64) float64 { return acres * SqmPerAcre }

// SqmToSqft converts square meters to square feet.
func SqmToSqft(sqm float64) float64 { return sqm * SqftPerSqm }

// SqftToSqm converts square feet to square meters.
func SqftToSqm(sqft float64) float64 { return sqft / SqftPerSqm }
