package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/zerotwo/campus-area-analyzer/services/analyzer/measure"
	"github.com/zerotwo/campus-area-analyzer/services/analyzer/session"
)

// BuildWorkbook renders all sessions into an XLSX workbook: one "shapes"
// sheet with the flat per-shape table and one "totals" sheet with a
// per-campus row.
func BuildWorkbook(sessions []*session.Session) ([]byte, error) {
	f := excelize.NewFile()
	shapesSheet := "shapes"
	totalsSheet := "totals"
	f.SetSheetName("Sheet1", shapesSheet)
	if _, err := f.NewSheet(totalsSheet); err != nil {
		return nil, err
	}

	_ = f.SetCellValue(shapesSheet, "A1", "address")
	for i, h := range ShapesHeader {
		cell, _ := excelize.CoordinatesToCellName(i+2, 1)
		_ = f.SetCellValue(shapesSheet, cell, h)
	}

	row := 2
	for _, s := range sessions {
		for _, r := range s.ExportRows() {
			values := []any{
				s.Address,
				r.ID.String(),
				string(r.Category),
				r.VertexCount,
				r.FootprintSqft,
				r.FootprintAcres,
				r.FloorCount,
				r.TotalSqft,
				r.TotalAcres,
				r.CreatedAt.Format(time.RFC3339),
			}
			for col, v := range values {
				cell, _ := excelize.CoordinatesToCellName(col+1, row)
				_ = f.SetCellValue(shapesSheet, cell, v)
			}
			row++
		}
	}

	for i, h := range ResultsHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(totalsSheet, cell, h)
	}
	for i, s := range sessions {
		sum := s.Summarize()
		values := []any{
			s.Address,
			s.Lat,
			s.Lng,
			sum.ByCategory[measure.CategoryBoundary].Acres,
			sum.ByCategory[measure.CategoryBuilding].Acres,
			sum.ByCategory[measure.CategoryField].Acres,
			sum.ByCategory[measure.CategoryParking].Acres,
			sum.ByCategory[measure.CategoryOutdoor].Acres,
			sum.OpenAcres,
			sum.FieldUtilizationPct,
			sum.BuildingCoveragePct,
			s.Notes,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			_ = f.SetCellValue(totalsSheet, cell, v)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
