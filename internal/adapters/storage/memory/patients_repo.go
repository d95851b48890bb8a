package memory

import (
	"context"
	"strings"
	"sync"

	"patientor/internal/domain/entries"
	"patientor/internal/domain/patients"
)

// patientRepo guarda pacientes en orden de alta. Todas las escrituras
// toman el lock completo, así un append nunca queda a medias.
type patientRepo struct {
	mu       sync.RWMutex
	order    []string
	byID     map[string]*patients.Patient
	entryIDs map[string]struct{}
}

func NewPatientRepo() patients.Repository {
	return &patientRepo{
		byID:     make(map[string]*patients.Patient),
		entryIDs: make(map[string]struct{}),
	}
}

func (r *patientRepo) Create(ctx context.Context, p patients.Patient) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return patients.ErrInvalidInput
	}
	if _, exists := r.byID[p.ID]; exists {
		return patients.ErrDuplicateID
	}

	stored := p.Clone()
	for _, e := range stored.Entries {
		id := e.Base().ID
		if id == "" {
			return patients.ErrInvalidInput
		}
		if _, dup := r.entryIDs[id]; dup {
			return patients.ErrDuplicateID
		}
	}
	for _, e := range stored.Entries {
		r.entryIDs[e.Base().ID] = struct{}{}
	}

	r.byID[p.ID] = &stored
	r.order = append(r.order, p.ID)
	return nil
}

func (r *patientRepo) GetByID(ctx context.Context, id string) (patients.Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return patients.Patient{}, patients.ErrNotFound
	}
	return p.Clone(), nil
}

func (r *patientRepo) List(ctx context.Context) ([]patients.Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]patients.Patient, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id].Clone())
	}
	return out, nil
}

func (r *patientRepo) AppendEntry(ctx context.Context, patientID string, e entries.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.byID[patientID]
	if !ok {
		return patients.ErrNotFound
	}

	id := e.Base().ID
	if strings.TrimSpace(id) == "" {
		return patients.ErrInvalidInput
	}
	if _, dup := r.entryIDs[id]; dup {
		return patients.ErrDuplicateID
	}

	r.entryIDs[id] = struct{}{}
	p.Entries = append(p.Entries, entries.Clone(e))
	return nil
}
