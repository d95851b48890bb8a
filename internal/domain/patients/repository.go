package patients

import (
	"context"

	"patientor/internal/domain/entries"
)

// Repository guarda pacientes en orden de alta.
// Implementaciones deben devolver ErrNotFound si el paciente no existe.
type Repository interface {
	Create(ctx context.Context, p Patient) error
	GetByID(ctx context.Context, id string) (Patient, error)
	List(ctx context.Context) ([]Patient, error)
	AppendEntry(ctx context.Context, patientID string, e entries.Entry) error
}
