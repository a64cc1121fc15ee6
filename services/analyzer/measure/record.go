package measure

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"

	"github.com/zerotwo/campus-area-analyzer/services/analyzer/geom"
)

// GeoPoint is a WGS84 vertex as received from the drawing surface.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// State tracks a record through its lifecycle. A record is measurable only
// in StateComplete; StateDeleted is terminal.
type State string

const (
	StateDraft    State = "draft"
	StateComplete State = "complete"
	StateEditing  State = "editing"
	StateDeleted  State = "deleted"
)

// ErrRecordDeleted is returned when mutating a deleted record.
var ErrRecordDeleted = errors.New("measure: record is deleted")

// Record is one user-drawn shape with its computed areas. Areas are always
// re-derived from the vertices through validate -> project -> area; TotalSqm
// is never written independently of FootprintSqm.
type Record struct {
	ID       uuid.UUID  `json:"id"`
	Category Category   `json:"category"`
	Vertices []GeoPoint `json:"vertices"`

	// Floors is stored for every category but only scales buildings.
	Floors int `json:"floors"`

	FootprintSqm float64 `json:"footprint_sqm"`
	TotalSqm     float64 `json:"total_sqm"`

	State     State     `json:"state"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewRecord creates a record for a finished drawing and measures it. The
// record is always returned; when measurement fails it stays in StateDraft
// and the validation error is reported alongside.
func NewRecord(category Category, vertices []GeoPoint) (*Record, error) {
	now := time.Now().UTC()
	r := &Record{
		ID:        uuid.New(),
		Category:  category,
		Vertices:  append([]GeoPoint(nil), vertices...),
		Floors:    1,
		State:     StateDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := r.recompute(); err != nil {
		return r, err
	}
	return r, nil
}

// SetVertices replaces the shape's vertices and re-measures. On validation
// failure the new vertices are kept (the edit is not discarded) but the last
// valid areas are retained and the record stays out of StateComplete.
func (r *Record) SetVertices(vertices []GeoPoint) error {
	if r.State == StateDeleted {
		return ErrRecordDeleted
	}
	r.Vertices = append([]GeoPoint(nil), vertices...)
	r.UpdatedAt = time.Now().UTC()
	return r.fail(r.recompute())
}

// Reclassify changes the category and re-derives the total (the floor
// multiplier may start or stop applying).
func (r *Record) Reclassify(category Category) error {
	if r.State == StateDeleted {
		return ErrRecordDeleted
	}
	if !category.Valid() {
		return ErrUnknownCategory
	}
	r.Category = category
	r.UpdatedAt = time.Now().UTC()
	return r.fail(r.recompute())
}

// SetFloors stores a new floor count. Counts below 1 are rejected without
// mutating the record. Records that are not currently measurable keep the
// count for the next successful measurement.
func (r *Record) SetFloors(floors int) error {
	if r.State == StateDeleted {
		return ErrRecordDeleted
	}
	if floors < 1 {
		return ErrInvalidFloorCount
	}
	r.Floors = floors
	r.UpdatedAt = time.Now().UTC()
	if r.State != StateComplete {
		return nil
	}
	return r.fail(r.recompute())
}

// Delete marks the record terminal. Its id is never reused.
func (r *Record) Delete() {
	r.State = StateDeleted
	r.UpdatedAt = time.Now().UTC()
}

// Measurable reports whether the record contributes to aggregation.
func (r *Record) Measurable() bool {
	return r.State == StateComplete
}

// FootprintAcres returns the footprint in acres.
func (r *Record) FootprintAcres() float64 { return geom.SqmToAcres(r.FootprintSqm) }

// FootprintSqft returns the footprint in square feet.
func (r *Record) FootprintSqft() float64 { return geom.SqmToSqft(r.FootprintSqm) }

// TotalAcres returns the floor-scaled total in acres.
func (r *Record) TotalAcres() float64 { return geom.SqmToAcres(r.TotalSqm) }

// TotalSqft returns the floor-scaled total in square feet.
func (r *Record) TotalSqft() float64 { return geom.SqmToSqft(r.TotalSqm) }

// Ring returns the vertices as a closed lon/lat ring, or nil while the
// record has fewer than 3 vertices.
func (r *Record) Ring() orb.Ring {
	if len(r.Vertices) < 3 {
		return nil
	}
	ring := make(orb.Ring, 0, len(r.Vertices)+1)
	for _, v := range r.Vertices {
		ring = append(ring, orb.Point{v.Lng, v.Lat})
	}
	if ring[0] != ring[len(ring)-1] {
		ring = append(ring, ring[0])
	}
	return ring
}

// recompute runs the full measurement pipeline and, on success, moves the
// record into StateComplete.
func (r *Record) recompute() error {
	points := make([]orb.Point, 0, len(r.Vertices))
	for _, v := range r.Vertices {
		points = append(points, orb.Point{v.Lng, v.Lat})
	}

	ring, err := geom.Validate(points)
	if err != nil {
		return err
	}
	proj, err := geom.NewProjection(ring)
	if err != nil {
		return err
	}

	footprint := geom.RingArea(proj.Project(ring))
	total := footprint
	if r.Category.AppliesFloors() {
		if total, err = TotalBuildingArea(footprint, r.Floors); err != nil {
			return err
		}
	}

	r.FootprintSqm = footprint
	r.TotalSqm = total
	r.State = StateComplete
	return nil
}

// fail folds a recompute error into the state machine: too few vertices puts
// the record back into the provisional draft state, any other failure of a
// previously measured record leaves it in editing with its last valid areas.
func (r *Record) fail(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, geom.ErrInsufficientVertices):
		r.State = StateDraft
	case r.State == StateComplete:
		r.State = StateEditing
	}
	return err
}
