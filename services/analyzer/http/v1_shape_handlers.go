package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/zerotwo/campus-area-analyzer/services/analyzer/geom"
	"github.com/zerotwo/campus-area-analyzer/services/analyzer/measure"
	"github.com/zerotwo/campus-area-analyzer/services/analyzer/metrics"
	"github.com/zerotwo/campus-area-analyzer/services/analyzer/session"
)

type shapePayload struct {
	Category    string      `json:"category"`
	Coordinates [][]float64 `json:"coordinates"` // [[lat, lng], ...] as drawn
	Floors      *int        `json:"floors"`
}

// handleV1AddShape records a finished drawing
// POST /api/v1/sessions/:id/shapes
func (s *Server) handleV1AddShape(c *gin.Context) {
	sess, ok := s.sessionFromPath(c)
	if !ok {
		return
	}

	var req shapePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	category, err := measure.ParseCategory(req.Category)
	if err != nil {
		s.engineError(c, err, nil)
		return
	}
	vertices, ok := parseCoordinates(c, req.Coordinates)
	if !ok {
		return
	}

	rec, err := sess.AddShape(category, vertices)
	if err == nil && req.Floors != nil {
		_, err = sess.SetFloors(rec.ID, *req.Floors)
	}
	if err != nil {
		s.engineError(c, err, rec)
		return
	}

	metrics.ShapeMeasured(string(rec.Category))
	c.JSON(http.StatusCreated, gin.H{
		"data": gin.H{
			"shape":   shapeView(rec),
			"summary": sess.Summarize(),
		},
	})
}

// handleV1UpdateShape replaces a shape's vertices and category
// PUT /api/v1/sessions/:id/shapes/:shape_id
func (s *Server) handleV1UpdateShape(c *gin.Context) {
	sess, ok := s.sessionFromPath(c)
	if !ok {
		return
	}
	shapeID, ok := shapeIDFromPath(c)
	if !ok {
		return
	}

	var req shapePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	category, err := measure.ParseCategory(req.Category)
	if err != nil {
		s.engineError(c, err, nil)
		return
	}
	vertices, ok := parseCoordinates(c, req.Coordinates)
	if !ok {
		return
	}

	rec, err := sess.UpdateShape(shapeID, category, vertices)
	if err == nil && req.Floors != nil {
		_, err = sess.SetFloors(shapeID, *req.Floors)
	}
	if err != nil {
		s.engineError(c, err, rec)
		return
	}

	metrics.ShapeMeasured(string(rec.Category))
	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"shape":   shapeView(rec),
			"summary": sess.Summarize(),
		},
	})
}

// handleV1UpdateFloors sets the floor count after Street View inspection
// PUT /api/v1/sessions/:id/shapes/:shape_id/floors
func (s *Server) handleV1UpdateFloors(c *gin.Context) {
	sess, ok := s.sessionFromPath(c)
	if !ok {
		return
	}
	shapeID, ok := shapeIDFromPath(c)
	if !ok {
		return
	}

	var req struct {
		Floors int `json:"floors"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	rec, err := sess.SetFloors(shapeID, req.Floors)
	if err != nil {
		s.engineError(c, err, rec)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"shape":   shapeView(rec),
			"summary": sess.Summarize(),
		},
	})
}

// handleV1DeleteShape removes a drawn shape
// DELETE /api/v1/sessions/:id/shapes/:shape_id
func (s *Server) handleV1DeleteShape(c *gin.Context) {
	sess, ok := s.sessionFromPath(c)
	if !ok {
		return
	}
	shapeID, ok := shapeIDFromPath(c)
	if !ok {
		return
	}

	if err := sess.RemoveShape(shapeID); err != nil {
		s.engineError(c, err, nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"deleted": true,
			"summary": sess.Summarize(),
		},
	})
}

func shapeIDFromPath(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("shape_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid shape id"})
		return uuid.Nil, false
	}
	return id, true
}

func parseCoordinates(c *gin.Context, raw [][]float64) ([]measure.GeoPoint, bool) {
	vertices := make([]measure.GeoPoint, 0, len(raw))
	for _, pair := range raw {
		if len(pair) != 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "coordinates must be [lat, lng] pairs"})
			return nil, false
		}
		lat, lng := pair[0], pair[1]
		if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "coordinates out of range"})
			return nil, false
		}
		vertices = append(vertices, measure.GeoPoint{Lat: lat, Lng: lng})
	}
	return vertices, true
}

// engineError maps engine errors onto HTTP statuses. Validation failures are
// recoverable: the record (when there is one) is reported back in its current
// state so the UI can prompt a redraw.
func (s *Server) engineError(c *gin.Context, err error, rec *measure.Record) {
	if errors.Is(err, session.ErrShapeNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "shape not found"})
		return
	}

	if kind, ok := validationKind(err); ok {
		metrics.ValidationFailed(kind)
		body := gin.H{"error": err.Error(), "kind": kind}
		if rec != nil {
			body["shape"] = shapeView(rec)
		}
		c.JSON(http.StatusUnprocessableEntity, body)
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func validationKind(err error) (string, bool) {
	switch {
	case errors.Is(err, geom.ErrInsufficientVertices):
		return "insufficient_vertices", true
	case errors.Is(err, geom.ErrSelfIntersection):
		return "self_intersection", true
	case errors.Is(err, geom.ErrZeroArea):
		return "zero_area", true
	case errors.Is(err, geom.ErrProjectionSpan):
		return "projection_span", true
	case errors.Is(err, measure.ErrInvalidFloorCount):
		return "invalid_floor_count", true
	case errors.Is(err, measure.ErrUnknownCategory):
		return "unknown_category", true
	case errors.Is(err, measure.ErrRecordDeleted):
		return "record_deleted", true
	}
	return "", false
}
