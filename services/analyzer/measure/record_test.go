package measure

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/zerotwo/campus-area-analyzer/services/analyzer/geom"
)

// Roughly 100m x 100m at 40N.
func squareVertices() []GeoPoint {
	return []GeoPoint{
		{Lat: 40.0, Lng: -75.0},
		{Lat: 40.0, Lng: -74.9988},
		{Lat: 40.0009, Lng: -74.9988},
		{Lat: 40.0009, Lng: -75.0},
	}
}

func bowtieVertices() []GeoPoint {
	return []GeoPoint{
		{Lat: 40.0, Lng: -75.0},
		{Lat: 40.001, Lng: -74.999},
		{Lat: 40.0, Lng: -74.999},
		{Lat: 40.001, Lng: -75.0},
	}
}

func TestNewRecord_MeasuresOnCreation(t *testing.T) {
	rec, err := NewRecord(CategoryField, squareVertices())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.State != StateComplete {
		t.Fatalf("expected complete, got %s", rec.State)
	}
	if rec.FootprintSqm <= 0 {
		t.Fatalf("expected positive footprint, got %v", rec.FootprintSqm)
	}
	if rec.TotalSqm != rec.FootprintSqm {
		t.Fatalf("floor_count=1 must give total == footprint exactly: %v vs %v", rec.TotalSqm, rec.FootprintSqm)
	}
	if rec.Floors != 1 {
		t.Fatalf("expected default floor count 1, got %d", rec.Floors)
	}
	if rec.ID == uuid.Nil {
		t.Fatal("record id was not assigned")
	}
}

func TestNewRecord_TwoPointsStaysDraft(t *testing.T) {
	rec, err := NewRecord(CategoryBoundary, squareVertices()[:2])
	if !errors.Is(err, geom.ErrInsufficientVertices) {
		t.Fatalf("expected ErrInsufficientVertices, got %v", err)
	}
	if rec.State != StateDraft {
		t.Fatalf("expected draft, got %s", rec.State)
	}
	if rec.Measurable() {
		t.Fatal("draft record must not be measurable")
	}
}

func TestNewRecord_BowtieStaysDraft(t *testing.T) {
	rec, err := NewRecord(CategoryParking, bowtieVertices())
	if !errors.Is(err, geom.ErrSelfIntersection) {
		t.Fatalf("expected ErrSelfIntersection, got %v", err)
	}
	if rec.State != StateDraft {
		t.Fatalf("never-valid record should stay draft, got %s", rec.State)
	}
}

func TestSetFloors_ScalesBuildings(t *testing.T) {
	rec, err := NewRecord(CategoryBuilding, squareVertices())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := rec.SetFloors(3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.TotalSqm != rec.FootprintSqm*3 {
		t.Fatalf("expected total == footprint*3 exactly: %v vs %v", rec.TotalSqm, rec.FootprintSqm*3)
	}
}

func TestSetFloors_IgnoredForNonBuildings(t *testing.T) {
	rec, err := NewRecord(CategoryParking, squareVertices())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := rec.SetFloors(4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Floors != 4 {
		t.Fatalf("floor count should be stored, got %d", rec.Floors)
	}
	if rec.TotalSqm != rec.FootprintSqm {
		t.Fatalf("non-building total must ignore floors: %v vs %v", rec.TotalSqm, rec.FootprintSqm)
	}
}

func TestSetFloors_RejectsNonPositive(t *testing.T) {
	rec, err := NewRecord(CategoryBuilding, squareVertices())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	before := rec.Floors
	for _, floors := range []int{0, -2} {
		if err := rec.SetFloors(floors); !errors.Is(err, ErrInvalidFloorCount) {
			t.Errorf("floors=%d: expected ErrInvalidFloorCount, got %v", floors, err)
		}
	}
	if rec.Floors != before {
		t.Fatalf("rejected floor count must not mutate the record, got %d", rec.Floors)
	}
}

func TestSetVertices_FailedEditRetainsAreas(t *testing.T) {
	rec, err := NewRecord(CategoryBuilding, squareVertices())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	footprint, total := rec.FootprintSqm, rec.TotalSqm

	err = rec.SetVertices(bowtieVertices())
	if !errors.Is(err, geom.ErrSelfIntersection) {
		t.Fatalf("expected ErrSelfIntersection, got %v", err)
	}
	if rec.State != StateEditing {
		t.Fatalf("expected editing after failed re-validation, got %s", rec.State)
	}
	if rec.FootprintSqm != footprint || rec.TotalSqm != total {
		t.Fatalf("failed edit must retain last valid areas: %v/%v vs %v/%v",
			rec.FootprintSqm, rec.TotalSqm, footprint, total)
	}
	if len(rec.Vertices) != 4 {
		t.Fatal("the edit itself must not be discarded")
	}
}

func TestSetVertices_RecoversToComplete(t *testing.T) {
	rec, _ := NewRecord(CategoryField, bowtieVertices())

	if err := rec.SetVertices(squareVertices()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.State != StateComplete {
		t.Fatalf("expected complete after valid edit, got %s", rec.State)
	}
	if rec.FootprintSqm <= 0 {
		t.Fatalf("expected positive footprint, got %v", rec.FootprintSqm)
	}
}

func TestSetVertices_DropBelowThreeGoesDraft(t *testing.T) {
	rec, err := NewRecord(CategoryField, squareVertices())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := rec.SetVertices(squareVertices()[:2]); !errors.Is(err, geom.ErrInsufficientVertices) {
		t.Fatalf("expected ErrInsufficientVertices, got %v", err)
	}
	if rec.State != StateDraft {
		t.Fatalf("expected draft with fewer than 3 vertices, got %s", rec.State)
	}
}

func TestReclassify(t *testing.T) {
	rec, err := NewRecord(CategoryBuilding, squareVertices())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := rec.SetFloors(5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.TotalSqm != rec.FootprintSqm*5 {
		t.Fatalf("expected 5-floor total, got %v", rec.TotalSqm)
	}

	if err := rec.Reclassify(CategoryField); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.TotalSqm != rec.FootprintSqm {
		t.Fatalf("non-building total must drop the multiplier: %v vs %v", rec.TotalSqm, rec.FootprintSqm)
	}

	if err := rec.Reclassify(Category("swamp")); !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestDeletedRecordRejectsMutation(t *testing.T) {
	rec, err := NewRecord(CategoryField, squareVertices())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rec.Delete()
	if rec.State != StateDeleted {
		t.Fatalf("expected deleted, got %s", rec.State)
	}
	if err := rec.SetVertices(squareVertices()); !errors.Is(err, ErrRecordDeleted) {
		t.Errorf("SetVertices on deleted record: got %v", err)
	}
	if err := rec.SetFloors(2); !errors.Is(err, ErrRecordDeleted) {
		t.Errorf("SetFloors on deleted record: got %v", err)
	}
	if err := rec.Reclassify(CategoryParking); !errors.Is(err, ErrRecordDeleted) {
		t.Errorf("Reclassify on deleted record: got %v", err)
	}
}

func TestTotalBuildingArea(t *testing.T) {
	got, err := TotalBuildingArea(10000, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 30000 {
		t.Fatalf("expected 30000, got %v", got)
	}
	if _, err := TotalBuildingArea(10000, 0); !errors.Is(err, ErrInvalidFloorCount) {
		t.Fatalf("expected ErrInvalidFloorCount, got %v", err)
	}
}

func TestParseCategory(t *testing.T) {
	cases := map[string]Category{
		"boundary": CategoryBoundary,
		"BUILDING": CategoryBuilding,
		" field ":  CategoryField,
		"Parking":  CategoryParking,
		"outdoor":  CategoryOutdoor,
	}
	for in, want := range cases {
		got, err := ParseCategory(in)
		if err != nil {
			t.Errorf("ParseCategory(%q): unexpected error %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseCategory(%q) = %s, want %s", in, got, want)
		}
	}

	if _, err := ParseCategory("lake"); !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
}
