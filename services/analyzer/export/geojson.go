package export

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/zerotwo/campus-area-analyzer/services/analyzer/session"
)

// FeatureCollection renders a session's complete shapes as GeoJSON polygons
// with their measurements attached as properties, for map overlays and GIS
// tools.
func FeatureCollection(s *session.Session) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, rec := range s.Shapes() {
		if !rec.Measurable() {
			continue
		}
		ring := rec.Ring()
		if ring == nil {
			continue
		}
		feature := geojson.NewFeature(orb.Polygon{ring})
		feature.ID = rec.ID.String()
		feature.Properties = geojson.Properties{
			"category":        string(rec.Category),
			"floors":          rec.Floors,
			"footprint_sqm":   rec.FootprintSqm,
			"footprint_acres": rec.FootprintAcres(),
			"total_sqm":       rec.TotalSqm,
			"total_acres":     rec.TotalAcres(),
		}
		fc.Append(feature)
	}
	return fc
}
