package geom

import (
	"math"

	"github.com/paulmach/orb"
)

// DuplicateEpsilonDeg is the tolerance below which two vertices are
// considered the same point (roughly 1 cm on the ground).
const DuplicateEpsilonDeg = 1e-7

// Validate turns a raw vertex sequence (lon/lat, WGS84) into a closed ring
// ready for projection and area computation. It collapses consecutive
// duplicates, requires at least 3 distinct vertices, rejects
// self-intersecting and zero-area rings, and normalizes winding to
// counter-clockwise. Self-intersecting input is rejected rather than
// repaired; a repair step would change what the user drew.
func Validate(points []orb.Point) (orb.Ring, error) {
	distinct := collapseDuplicates(points)
	if len(distinct) < 3 {
		return nil, ErrInsufficientVertices
	}
	if selfIntersects(distinct) {
		return nil, ErrSelfIntersection
	}

	ring := make(orb.Ring, 0, len(distinct)+1)
	ring = append(ring, distinct...)
	ring = append(ring, distinct[0])

	if math.Abs(planarSignedArea(ring)) < 1e-15 {
		return nil, ErrZeroArea
	}
	if ring.Orientation() == orb.CW {
		ring.Reverse()
	}
	return ring, nil
}

// collapseDuplicates drops consecutive vertices within DuplicateEpsilonDeg of
// each other, including a trailing vertex that repeats the first (explicit
// closure in the input).
func collapseDuplicates(points []orb.Point) []orb.Point {
	out := make([]orb.Point, 0, len(points))
	for _, p := range points {
		if len(out) > 0 && samePoint(out[len(out)-1], p) {
			continue
		}
		out = append(out, p)
	}
	if len(out) > 1 && samePoint(out[0], out[len(out)-1]) {
		out = out[:len(out)-1]
	}
	return out
}

func samePoint(a, b orb.Point) bool {
	return math.Abs(a.Lon()-b.Lon()) < DuplicateEpsilonDeg &&
		math.Abs(a.Lat()-b.Lat()) < DuplicateEpsilonDeg
}

// selfIntersects reports whether any two non-adjacent edges of the ring
// described by pts (open, distinct vertices) touch or cross.
func selfIntersects(pts []orb.Point) bool {
	n := len(pts)
	for i := 0; i < n; i++ {
		a1, a2 := pts[i], pts[(i+1)%n]
		for j := i + 1; j < n; j++ {
			if j == i+1 || (i == 0 && j == n-1) {
				continue // edges sharing a vertex
			}
			b1, b2 := pts[j], pts[(j+1)%n]
			if segmentsIntersect(a1, a2, b1, b2) {
				return true
			}
		}
	}
	return false
}

func segmentsIntersect(p1, p2, q1, q2 orb.Point) bool {
	d1 := cross(q1, q2, p1)
	d2 := cross(q1, q2, p2)
	d3 := cross(p1, p2, q1)
	d4 := cross(p1, p2, q2)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	// Collinear or endpoint-touching cases.
	switch {
	case d1 == 0 && onSegment(q1, q2, p1):
		return true
	case d2 == 0 && onSegment(q1, q2, p2):
		return true
	case d3 == 0 && onSegment(p1, p2, q1):
		return true
	case d4 == 0 && onSegment(p1, p2, q2):
		return true
	}
	return false
}

// cross returns the z component of (b-a) x (p-a).
func cross(a, b, p orb.Point) float64 {
	return (b.Lon()-a.Lon())*(p.Lat()-a.Lat()) - (b.Lat()-a.Lat())*(p.Lon()-a.Lon())
}

// onSegment reports whether p lies within the bounding box of segment ab
// (callers have already established collinearity).
func onSegment(a, b, p orb.Point) bool {
	return math.Min(a.Lon(), b.Lon()) <= p.Lon() && p.Lon() <= math.Max(a.Lon(), b.Lon()) &&
		math.Min(a.Lat(), b.Lat()) <= p.Lat() && p.Lat() <= math.Max(a.Lat(), b.Lat())
}

// planarSignedArea is the shoelace sum over a closed ring, in the ring's own
// coordinate units.
func planarSignedArea(ring orb.Ring) float64 {
	sum := 0.0
	for i := 0; i < len(ring)-1; i++ {
		sum += ring[i].Lon()*ring[i+1].Lat() - ring[i+1].Lon()*ring[i].Lat()
	}
	return sum / 2
}
