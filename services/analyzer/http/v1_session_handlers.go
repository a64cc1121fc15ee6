package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/zerotwo/campus-area-analyzer/services/analyzer/addresses"
	"github.com/zerotwo/campus-area-analyzer/services/analyzer/geocode"
	"github.com/zerotwo/campus-area-analyzer/services/analyzer/measure"
	"github.com/zerotwo/campus-area-analyzer/services/analyzer/session"
)

// handleV1ListAddresses returns the campus roster from the configured CSV
// GET /api/v1/addresses
func (s *Server) handleV1ListAddresses(c *gin.Context) {
	roster, err := addresses.Load(s.cfg.AddressesCSVPath)
	if err != nil {
		// A missing or unreadable roster just means no pre-filled list.
		roster = []string{}
	}

	c.JSON(http.StatusOK, gin.H{
		"data": roster,
		"meta": gin.H{
			"count": len(roster),
		},
	})
}

// handleV1Geocode resolves an address to map coordinates
// POST /api/v1/geocode
func (s *Server) handleV1Geocode(c *gin.Context) {
	var req struct {
		Address string `json:"address"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Address == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "address is required"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	loc, err := s.geocoder.Geocode(ctx, req.Address)
	switch {
	case errors.Is(err, geocode.ErrNoAPIKey):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "geocoding is not configured"})
		return
	case errors.Is(err, geocode.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "address not found"})
		return
	case err != nil:
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"address": req.Address,
			"lat":     loc.Lat,
			"lng":     loc.Lng,
		},
	})
}

// handleV1CreateSession starts (or resumes) the analysis for an address
// POST /api/v1/sessions
func (s *Server) handleV1CreateSession(c *gin.Context) {
	var req struct {
		Address string   `json:"address"`
		Lat     *float64 `json:"lat"`
		Lng     *float64 `json:"lng"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Address == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "address is required"})
		return
	}

	var lat, lng float64
	if req.Lat != nil && req.Lng != nil {
		lat, lng = *req.Lat, *req.Lng
	} else {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		loc, err := s.geocoder.Geocode(ctx, req.Address)
		switch {
		case errors.Is(err, geocode.ErrNoAPIKey):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "geocoding is not configured; supply lat and lng"})
			return
		case errors.Is(err, geocode.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "address not found"})
			return
		case err != nil:
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		lat, lng = loc.Lat, loc.Lng
	}

	sess, created := s.store.CreateOrGet(req.Address, lat, lng)
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{
		"data": sessionView(sess),
		"meta": gin.H{
			"created": created,
		},
	})
}

// handleV1GetSession returns a session with its shapes and live summary
// GET /api/v1/sessions/:id
func (s *Server) handleV1GetSession(c *gin.Context) {
	sess, ok := s.sessionFromPath(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": sessionView(sess)})
}

// handleV1DeleteSession discards an analysis entirely
// DELETE /api/v1/sessions/:id
func (s *Server) handleV1DeleteSession(c *gin.Context) {
	sess, ok := s.sessionFromPath(c)
	if !ok {
		return
	}
	s.store.Remove(sess.ID)
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"deleted": true}})
}

// handleV1SessionSummary returns the live per-category totals
// GET /api/v1/sessions/:id/summary
func (s *Server) handleV1SessionSummary(c *gin.Context) {
	sess, ok := s.sessionFromPath(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data": sess.Summarize(),
		"meta": gin.H{
			"generated_at": time.Now().UTC().Format(time.RFC3339),
		},
	})
}

// handleV1SetNotes attaches free-form notes, carried into the results export
// PUT /api/v1/sessions/:id/notes
func (s *Server) handleV1SetNotes(c *gin.Context) {
	sess, ok := s.sessionFromPath(c)
	if !ok {
		return
	}

	var req struct {
		Notes string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	sess.SetNotes(req.Notes)
	c.JSON(http.StatusOK, gin.H{"data": sessionView(sess)})
}

// sessionFromPath resolves the :id path param, writing the error response
// itself when the id is malformed or unknown.
func (s *Server) sessionFromPath(c *gin.Context) (*session.Session, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session id"})
		return nil, false
	}
	sess, ok := s.store.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return nil, false
	}
	return sess, true
}

func sessionView(sess *session.Session) gin.H {
	shapes := sess.Shapes()
	views := make([]gin.H, 0, len(shapes))
	for _, rec := range shapes {
		views = append(views, shapeView(rec))
	}
	return gin.H{
		"id":         sess.ID,
		"address":    sess.Address,
		"lat":        sess.Lat,
		"lng":        sess.Lng,
		"notes":      sess.Notes,
		"created_at": sess.CreatedAt,
		"updated_at": sess.UpdatedAt,
		"shapes":     views,
		"summary":    sess.Summarize(),
	}
}

func shapeView(rec *measure.Record) gin.H {
	return gin.H{
		"id":              rec.ID,
		"category":        rec.Category,
		"state":           rec.State,
		"vertices":        rec.Vertices,
		"floors":          rec.Floors,
		"footprint_sqm":   rec.FootprintSqm,
		"footprint_acres": rec.FootprintAcres(),
		"footprint_sqft":  rec.FootprintSqft(),
		"total_sqm":       rec.TotalSqm,
		"total_acres":     rec.TotalAcres(),
		"total_sqft":      rec.TotalSqft(),
		"created_at":      rec.CreatedAt,
		"updated_at":      rec.UpdatedAt,
	}
}
