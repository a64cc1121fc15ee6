package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/zerotwo/campus-area-analyzer/services/analyzer/geom"
	"github.com/zerotwo/campus-area-analyzer/services/analyzer/measure"
)

// CategoryTotal sums the floor-scaled totals of one category's complete
// shapes.
type CategoryTotal struct {
	Shapes int     `json:"shapes"`
	Sqm    float64 `json:"sqm"`
	Acres  float64 `json:"acres"`
	Sqft   float64 `json:"sqft"`
}

// Summary is the live aggregate view of a session. It is recomputed from the
// record set on every call and never stored, so it cannot drift.
type Summary struct {
	ByCategory map[measure.Category]CategoryTotal `json:"by_category"`

	GrandSqm   float64 `json:"grand_sqm"`
	GrandAcres float64 `json:"grand_acres"`
	GrandSqft  float64 `json:"grand_sqft"`

	// OpenAcres is the boundary minus the building footprint: the unbuilt
	// ground of the campus.
	OpenAcres           float64 `json:"open_acres"`
	FieldUtilizationPct float64 `json:"field_utilization_pct"`
	BuildingCoveragePct float64 `json:"building_coverage_pct"`

	ShapeCount int `json:"shape_count"`
}

// minAcres guards ratio denominators, matching the reporting behavior of the
// spreadsheet exports this tool replaces.
const minAcres = 0.001

// Summarize aggregates all complete records. Draft, editing and deleted
// records are excluded. The call is idempotent and mutates nothing.
func (s *Session) Summarize() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return summarize(s.records)
}

func summarize(records []*measure.Record) Summary {
	sum := Summary{ByCategory: make(map[measure.Category]CategoryTotal, len(measure.Categories))}
	for _, c := range measure.Categories {
		sum.ByCategory[c] = CategoryTotal{}
	}

	for _, rec := range records {
		if !rec.Measurable() {
			continue
		}
		t := sum.ByCategory[rec.Category]
		t.Shapes++
		t.Sqm += rec.TotalSqm
		t.Acres += rec.TotalAcres()
		t.Sqft += rec.TotalSqft()
		sum.ByCategory[rec.Category] = t

		sum.GrandSqm += rec.TotalSqm
		sum.ShapeCount++
	}
	sum.GrandAcres = geom.SqmToAcres(sum.GrandSqm)
	sum.GrandSqft = geom.SqmToSqft(sum.GrandSqm)

	boundary := sum.ByCategory[measure.CategoryBoundary].Acres
	building := sum.ByCategory[measure.CategoryBuilding].Acres
	field := sum.ByCategory[measure.CategoryField].Acres

	sum.OpenAcres = boundary - building
	sum.FieldUtilizationPct = field / max(sum.OpenAcres, minAcres) * 100
	sum.BuildingCoveragePct = building / max(boundary, minAcres) * 100
	return sum
}

// ExportRow is one line of the flat export table: a complete shape with its
// measurements, in creation order.
type ExportRow struct {
	ID             uuid.UUID        `json:"id"`
	Category       measure.Category `json:"category"`
	VertexCount    int              `json:"vertex_count"`
	FootprintSqft  float64          `json:"footprint_sqft"`
	FootprintAcres float64          `json:"footprint_acres"`
	FloorCount     int              `json:"floor_count"`
	TotalSqft      float64          `json:"total_sqft"`
	TotalAcres     float64          `json:"total_acres"`
	CreatedAt      time.Time        `json:"created_at"`
}

// ExportRows flattens the session's complete shapes for the export
// collaborator. Like Summarize, it is side-effect-free.
func (s *Session) ExportRows() []ExportRow {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows := make([]ExportRow, 0, len(s.records))
	for _, rec := range s.records {
		if !rec.Measurable() {
			continue
		}
		rows = append(rows, ExportRow{
			ID:             rec.ID,
			Category:       rec.Category,
			VertexCount:    len(rec.Vertices),
			FootprintSqft:  rec.FootprintSqft(),
			FootprintAcres: rec.FootprintAcres(),
			FloorCount:     rec.Floors,
			TotalSqft:      rec.TotalSqft(),
			TotalAcres:     rec.TotalAcres(),
			CreatedAt:      rec.CreatedAt,
		})
	}
	return rows
}
