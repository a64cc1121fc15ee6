package http

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zerotwo/campus-area-analyzer/services/analyzer/export"
	"github.com/zerotwo/campus-area-analyzer/services/analyzer/session"
)

// handleV1SessionExport downloads one session's shape table
// GET /api/v1/sessions/:id/export?format=csv|xlsx|geojson
func (s *Server) handleV1SessionExport(c *gin.Context) {
	sess, ok := s.sessionFromPath(c)
	if !ok {
		return
	}

	format := c.DefaultQuery("format", "csv")
	switch format {
	case "csv":
		var buf bytes.Buffer
		if err := export.WriteShapesCSV(&buf, sess.ExportRows()); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=shapes-%s.csv", sess.ID))
		c.Data(http.StatusOK, "text/csv", buf.Bytes())

	case "xlsx":
		data, err := export.BuildWorkbook([]*session.Session{sess})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=shapes-%s.xlsx", sess.ID))
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)

	case "geojson":
		c.JSON(http.StatusOK, export.FeatureCollection(sess))

	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown format, expected csv, xlsx or geojson"})
	}
}

// handleV1ExportResults downloads the campus-level totals across all sessions
// GET /api/v1/export/results
func (s *Server) handleV1ExportResults(c *gin.Context) {
	sessions := s.store.List()
	if len(sessions) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no analyses to export"})
		return
	}

	var buf bytes.Buffer
	if err := export.WriteResultsCSV(&buf, sessions); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Disposition", "attachment; filename=campus-analysis-results.csv")
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}
