package memory

import (
	"context"
	"sync"

	"patientor/internal/domain/diagnoses"
)

type diagnosisRepo struct {
	mu     sync.RWMutex
	items  []diagnoses.Diagnosis
	byCode map[string]int
}

func NewDiagnosisRepo() diagnoses.Repository {
	return &diagnosisRepo{
		byCode: make(map[string]int),
	}
}

func (r *diagnosisRepo) List(ctx context.Context) ([]diagnoses.Diagnosis, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]diagnoses.Diagnosis, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *diagnosisRepo) GetByCode(ctx context.Context, code string) (diagnoses.Diagnosis, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.byCode[code]
	if !ok {
		return diagnoses.Diagnosis{}, diagnoses.ErrNotFound
	}
	return r.items[i], nil
}

func (r *diagnosisRepo) Load(ctx context.Context, items []diagnoses.Diagnosis) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = make([]diagnoses.Diagnosis, 0, len(items))
	r.byCode = make(map[string]int, len(items))
	for _, d := range items {
		// último gana si el código se repite
		if i, ok := r.byCode[d.Code]; ok {
			r.items[i] = d
			continue
		}
		r.byCode[d.Code] = len(r.items)
		r.items = append(r.items, d)
	}
	return nil
}
