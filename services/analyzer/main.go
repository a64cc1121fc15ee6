package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/zerotwo/campus-area-analyzer/services/analyzer/config"
	"github.com/zerotwo/campus-area-analyzer/services/analyzer/geocode"
	httpserver "github.com/zerotwo/campus-area-analyzer/services/analyzer/http"
	"github.com/zerotwo/campus-area-analyzer/services/analyzer/metrics"
	"github.com/zerotwo/campus-area-analyzer/services/analyzer/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	store := session.NewStore()
	metrics.RegisterSessionGauge(func() float64 {
		return float64(store.Len())
	})

	geocoder := geocode.NewClient(&http.Client{Timeout: 25 * time.Second}, cfg.MapsAPIKey, cfg.GeocodeBaseURL)
	if !geocoder.Enabled() {
		log.Printf("GOOGLE_MAPS_API_KEY not set; geocoding disabled, sessions need explicit coordinates")
	}

	srv := httpserver.New(cfg, store, geocoder)
	log.Printf("campus analyzer API listening on %s", cfg.ListenAddr())

	if err := srv.Run(ctx); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
