package http

// registerV1Routes sets up the v1 API structure
// Groups: /api/v1/sessions, /api/v1/export, plus geocoding helpers
func (s *Server) registerV1Routes() {
	v1 := s.engine.Group("/api/v1")
	v1.Use(apiVersionMiddleware()) // Add X-API-Version: v1 header

	// Helpers for the map UI - roster and address lookup
	v1.GET("/addresses", s.handleV1ListAddresses)
	v1.POST("/geocode", s.handleV1Geocode)

	// Session endpoints - one analysis per campus address
	sessions := v1.Group("/sessions")
	{
		sessions.POST("", s.handleV1CreateSession)
		sessions.GET("/:id", s.handleV1GetSession)
		sessions.DELETE("/:id", s.handleV1DeleteSession)
		sessions.GET("/:id/summary", s.handleV1SessionSummary)
		sessions.PUT("/:id/notes", s.handleV1SetNotes)
		sessions.GET("/:id/export", s.handleV1SessionExport)

		// Shape endpoints - drawn polygons within a session
		sessions.POST("/:id/shapes", s.handleV1AddShape)
		sessions.PUT("/:id/shapes/:shape_id", s.handleV1UpdateShape)
		sessions.PUT("/:id/shapes/:shape_id/floors", s.handleV1UpdateFloors)
		sessions.DELETE("/:id/shapes/:shape_id", s.handleV1DeleteShape)
	}

	// Cross-session results table
	v1.GET("/export/results", s.handleV1ExportResults)
}
