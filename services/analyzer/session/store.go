package session

import (
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Store is the session-lifetime registry of analyses, one per address.
// Guarding the maps lets isolated sessions be served in parallel; edits
// within one session are serialized by the caller.
type Store struct {
	mu        sync.RWMutex
	byID      map[uuid.UUID]*Session
	byAddress map[string]uuid.UUID
	order     []uuid.UUID
}

// NewStore creates an empty registry.
func NewStore() *Store {
	return &Store{
		byID:      make(map[uuid.UUID]*Session),
		byAddress: make(map[string]uuid.UUID),
	}
}

// CreateOrGet returns the existing analysis for an address or starts a new
// one centered at lat/lng. The second return reports whether the session was
// created by this call.
func (st *Store) CreateOrGet(address string, lat, lng float64) (*Session, bool) {
	key := addressKey(address)

	st.mu.Lock()
	defer st.mu.Unlock()

	if id, ok := st.byAddress[key]; ok {
		return st.byID[id], false
	}

	s := New(strings.TrimSpace(address), lat, lng)
	st.byID[s.ID] = s
	st.byAddress[key] = s.ID
	st.order = append(st.order, s.ID)
	return s, true
}

// Get returns a session by id.
func (st *Store) Get(id uuid.UUID) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.byID[id]
	return s, ok
}

// GetByAddress returns a session by its address.
func (st *Store) GetByAddress(address string) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	id, ok := st.byAddress[addressKey(address)]
	if !ok {
		return nil, false
	}
	return st.byID[id], true
}

// List returns all sessions in creation order.
func (st *Store) List() []*Session {
	st.mu.RLock()
	defer st.mu.RUnlock()

	out := make([]*Session, 0, len(st.order))
	for _, id := range st.order {
		if s, ok := st.byID[id]; ok {
			out = append(out, s)
		}
	}
	return out
}

// Remove discards a session entirely.
func (st *Store) Remove(id uuid.UUID) bool {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.byID[id]
	if !ok {
		return false
	}
	delete(st.byID, id)
	delete(st.byAddress, addressKey(s.Address))
	for i, sid := range st.order {
		if sid == id {
			st.order = append(st.order[:i], st.order[i+1:]...)
			break
		}
	}
	return true
}

// Len reports the number of live sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.byID)
}

func addressKey(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}
