package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/zerotwo/campus-area-analyzer/services/analyzer/measure"
	"github.com/zerotwo/campus-area-analyzer/services/analyzer/session"
)

// ShapesHeader is the fixed column set of the per-shape export table.
var ShapesHeader = []string{
	"id",
	"category",
	"vertex_count",
	"footprint_sqft",
	"footprint_acres",
	"floor_count",
	"total_sqft",
	"total_acres",
	"created_at",
}

// WriteShapesCSV writes the flat per-shape table for one session.
func WriteShapesCSV(w io.Writer, rows []session.ExportRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ShapesHeader); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{
			row.ID.String(),
			string(row.Category),
			strconv.Itoa(row.VertexCount),
			formatArea(row.FootprintSqft),
			formatArea(row.FootprintAcres),
			strconv.Itoa(row.FloorCount),
			formatArea(row.TotalSqft),
			formatArea(row.TotalAcres),
			row.CreatedAt.Format(time.RFC3339),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ResultsHeader is the column set of the campus-level results table, one row
// per analyzed address.
var ResultsHeader = []string{
	"address",
	"lat",
	"lng",
	"boundary_acres",
	"building_acres",
	"field_acres",
	"parking_acres",
	"outdoor_acres",
	"open_acres",
	"field_utilization_pct",
	"building_coverage_pct",
	"notes",
}

// WriteResultsCSV writes per-campus totals across all sessions.
func WriteResultsCSV(w io.Writer, sessions []*session.Session) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ResultsHeader); err != nil {
		return err
	}
	for _, s := range sessions {
		sum := s.Summarize()
		record := []string{
			s.Address,
			formatCoord(s.Lat),
			formatCoord(s.Lng),
			formatArea(sum.ByCategory[measure.CategoryBoundary].Acres),
			formatArea(sum.ByCategory[measure.CategoryBuilding].Acres),
			formatArea(sum.ByCategory[measure.CategoryField].Acres),
			formatArea(sum.ByCategory[measure.CategoryParking].Acres),
			formatArea(sum.ByCategory[measure.CategoryOutdoor].Acres),
			formatArea(sum.OpenAcres),
			formatPct(sum.FieldUtilizationPct),
			formatPct(sum.BuildingCoveragePct),
			s.Notes,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatArea(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }
func formatPct(v float64) string  { return strconv.FormatFloat(v, 'f', 1, 64) }
func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
