package geom

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/project"
)

// WGS84 ellipsoid.
const (
	wgs84SemiMajorM = 6378137.0
	wgs84Flattening = 1 / 298.257223563
)

const (
	// MaxSpanDeg bounds the extent of a single polygon in either axis
	// (~11 km). Beyond that a single tangent-plane origin can no longer
	// keep area distortion under 0.1% and the caller must re-zone.
	MaxSpanDeg = 0.1
	// MaxLatitudeDeg matches the UTM cutoff; tangent-plane scale degrades
	// rapidly toward the poles.
	MaxLatitudeDeg = 84.0
)

// Projection is a local tangent-plane projection anchored at a single origin.
// All vertices of a polygon must go through the same Projection value;
// planar coordinates from different origins are not comparable.
type Projection struct {
	originLon float64
	originLat float64

	// meters per degree at the origin latitude
	mPerLonDeg float64
	mPerLatDeg float64
}

// NewProjection picks a projection for the ring, anchored at the mean of its
// distinct vertices. The origin rule is deterministic so repeated
// measurements of the same polygon always use the same plane.
func NewProjection(ring orb.Ring) (Projection, error) {
	if len(ring) == 0 {
		return Projection{}, ErrInsufficientVertices
	}

	bound := ring.Bound()
	if bound.Max.Lon()-bound.Min.Lon() > MaxSpanDeg || bound.Max.Lat()-bound.Min.Lat() > MaxSpanDeg {
		return Projection{}, ErrProjectionSpan
	}
	if bound.Max.Lat() > MaxLatitudeDeg || bound.Min.Lat() < -MaxLatitudeDeg {
		return Projection{}, ErrProjectionSpan
	}

	origin := meanVertex(ring)
	lat0 := origin.Lat() * math.Pi / 180
	sin0 := math.Sin(lat0)
	e2 := wgs84Flattening * (2 - wgs84Flattening)
	w2 := 1 - e2*sin0*sin0

	// Meridional and prime-vertical radii of curvature at the origin.
	m := wgs84SemiMajorM * (1 - e2) / math.Pow(w2, 1.5)
	n := wgs84SemiMajorM / math.Sqrt(w2)

	return Projection{
		originLon:  origin.Lon(),
		originLat:  origin.Lat(),
		mPerLonDeg: n * math.Cos(lat0) * math.Pi / 180,
		mPerLatDeg: m * math.Pi / 180,
	}, nil
}

// Forward maps a geographic point (lon/lat degrees) to planar meters.
func (p Projection) Forward(pt orb.Point) orb.Point {
	return orb.Point{
		(pt.Lon() - p.originLon) * p.mPerLonDeg,
		(pt.Lat() - p.originLat) * p.mPerLatDeg,
	}
}

// Inverse maps planar meters back to geographic degrees.
func (p Projection) Inverse(pt orb.Point) orb.Point {
	return orb.Point{
		pt.X()/p.mPerLonDeg + p.originLon,
		pt.Y()/p.mPerLatDeg + p.originLat,
	}
}

// Project applies the projection to every vertex of the ring.
func (p Projection) Project(ring orb.Ring) orb.Ring {
	return project.Ring(ring.Clone(), p.Forward)
}

// Unproject restores geographic coordinates for a planar ring produced by
// the same Projection.
func (p Projection) Unproject(ring orb.Ring) orb.Ring {
	return project.Ring(ring.Clone(), p.Inverse)
}

// meanVertex averages the distinct vertices of a ring, ignoring the closing
// point when present.
func meanVertex(ring orb.Ring) orb.Point {
	n := len(ring)
	if n > 1 && ring[0] == ring[n-1] {
		n--
	}
	var lon, lat float64
	for _, pt := range ring[:n] {
		lon += pt.Lon()
		lat += pt.Lat()
	}
	return orb.Point{lon / float64(n), lat / float64(n)}
}
