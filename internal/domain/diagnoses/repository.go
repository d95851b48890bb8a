package diagnoses

import "context"

type Repository interface {
	List(ctx context.Context) ([]Diagnosis, error)
	GetByCode(ctx context.Context, code string) (Diagnosis, error)
	Load(ctx context.Context, items []Diagnosis) error
}
