package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/zerotwo/campus-area-analyzer/services/analyzer/measure"
)

var (
	// ErrShapeNotFound is returned when a shape id is not in the session.
	ErrShapeNotFound = errors.New("session: shape not found")
)

// Session owns the measurement records drawn over one campus. Records keep
// their creation order so exports are stable. The engine itself holds no
// state beyond this set; dropping the Session drops the analysis.
type Session struct {
	ID      uuid.UUID `json:"id"`
	Address string    `json:"address"`
	Lat     float64   `json:"lat"`
	Lng     float64   `json:"lng"`
	Notes   string    `json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	mu      sync.Mutex
	records []*measure.Record
	index   map[uuid.UUID]*measure.Record
}

// New creates an empty session centered on the given address.
func New(address string, lat, lng float64) *Session {
	now := time.Now().UTC()
	return &Session{
		ID:        uuid.New(),
		Address:   address,
		Lat:       lat,
		Lng:       lng,
		CreatedAt: now,
		UpdatedAt: now,
		index:     make(map[uuid.UUID]*measure.Record),
	}
}

// AddShape records a finished drawing. The record is kept even when
// measurement fails (it stays draft and is excluded from aggregation); the
// validation error is returned for the caller to surface.
func (s *Session) AddShape(category measure.Category, vertices []measure.GeoPoint) (*measure.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := measure.NewRecord(category, vertices)
	s.records = append(s.records, rec)
	s.index[rec.ID] = rec
	s.touch()
	return rec, err
}

// UpdateShape replaces a shape's category and vertices and re-measures it.
func (s *Session) UpdateShape(id uuid.UUID, category measure.Category, vertices []measure.GeoPoint) (*measure.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.index[id]
	if !ok {
		return nil, ErrShapeNotFound
	}
	if err := rec.Reclassify(category); err != nil {
		return rec, err
	}
	s.touch()
	return rec, rec.SetVertices(vertices)
}

// SetFloors updates a shape's floor count.
func (s *Session) SetFloors(id uuid.UUID, floors int) (*measure.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.index[id]
	if !ok {
		return nil, ErrShapeNotFound
	}
	if err := rec.SetFloors(floors); err != nil {
		return rec, err
	}
	s.touch()
	return rec, nil
}

// RemoveShape deletes a shape. The id is never reused; other records are
// untouched.
func (s *Session) RemoveShape(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.index[id]
	if !ok {
		return ErrShapeNotFound
	}
	rec.Delete()
	delete(s.index, id)
	for i, r := range s.records {
		if r.ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			break
		}
	}
	s.touch()
	return nil
}

// Shape returns a single record by id.
func (s *Session) Shape(id uuid.UUID) (*measure.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.index[id]
	if !ok {
		return nil, ErrShapeNotFound
	}
	return rec, nil
}

// Shapes returns all records in creation order.
func (s *Session) Shapes() []*measure.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*measure.Record(nil), s.records...)
}

// SetNotes attaches free-form notes to the analysis.
func (s *Session) SetNotes(notes string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Notes = notes
	s.touch()
}

func (s *Session) touch() {
	s.UpdatedAt = time.Now().UTC()
}
