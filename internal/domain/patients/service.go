package patients

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"patientor/internal/domain/entries"

	"github.com/google/uuid"
)

var (
	ErrNotFound     = errors.New("patient not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrDuplicateID  = errors.New("duplicate id")
)

// reintentos si el repo rechaza un id repetido
const maxIDAttempts = 3

type Service struct {
	repo  Repository
	newID func() (string, error)
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:  repo,
		newID: newTimeOrderedID,
	}
}

// uuid v1: ordenado por tiempo, único dentro del proceso.
func newTimeOrderedID() (string, error) {
	u, err := uuid.NewUUID()
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

// List devuelve la proyección sin datos sensibles, en orden de alta.
func (s *Service) List(ctx context.Context) ([]NonSensitivePatient, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]NonSensitivePatient, 0, len(items))
	for _, p := range items {
		out = append(out, p.NonSensitive())
	}
	return out, nil
}

// All devuelve los registros completos (export).
func (s *Service) All(ctx context.Context) ([]Patient, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (Patient, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Patient{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, in NewPatient) (Patient, error) {
	if in.Name == "" || in.SSN == "" || in.Occupation == "" || in.DateOfBirth == "" || in.Gender == "" {
		return Patient{}, ErrInvalidInput
	}

	for attempt := 1; ; attempt++ {
		id, err := s.newID()
		if err != nil {
			return Patient{}, fmt.Errorf("generate patient id: %w", err)
		}

		p := Patient{
			ID:          id,
			Name:        in.Name,
			DateOfBirth: in.DateOfBirth,
			SSN:         in.SSN,
			Gender:      in.Gender,
			Occupation:  in.Occupation,
			Entries:     []entries.Entry{},
		}

		err = s.repo.Create(ctx, p)
		if errors.Is(err, ErrDuplicateID) && attempt < maxIDAttempts {
			continue
		}
		if err != nil {
			return Patient{}, err
		}
		return p, nil
	}
}

// AddEntry asigna id a una entry ya validada y la agrega al final de las
// entries del paciente. Devuelve ErrNotFound si el paciente no existe.
func (s *Service) AddEntry(ctx context.Context, patientID string, e entries.Entry) (entries.Entry, error) {
	if e == nil {
		return nil, ErrInvalidInput
	}
	patientID = strings.TrimSpace(patientID)
	if patientID == "" {
		return nil, ErrNotFound
	}

	for attempt := 1; ; attempt++ {
		id, err := s.newID()
		if err != nil {
			return nil, fmt.Errorf("generate entry id: %w", err)
		}

		withID := e.WithID(id)
		err = s.repo.AppendEntry(ctx, patientID, withID)
		if errors.Is(err, ErrDuplicateID) && attempt < maxIDAttempts {
			continue
		}
		if err != nil {
			return nil, err
		}
		return withID, nil
	}
}

// Seed inserta un paciente ya identificado (fixtures) con sus entries.
func (s *Service) Seed(ctx context.Context, p Patient) error {
	if strings.TrimSpace(p.ID) == "" {
		return ErrInvalidInput
	}

	list := p.Entries
	p.Entries = []entries.Entry{}
	if err := s.repo.Create(ctx, p); err != nil {
		return fmt.Errorf("seed patient %s: %w", p.ID, err)
	}

	for _, e := range list {
		if e.Base().ID == "" {
			var err error
			if e, err = s.withFreshID(e); err != nil {
				return err
			}
		}
		if err := s.repo.AppendEntry(ctx, p.ID, e); err != nil {
			return fmt.Errorf("seed entry %s: %w", e.Base().ID, err)
		}
	}
	return nil
}

func (s *Service) withFreshID(e entries.Entry) (entries.Entry, error) {
	id, err := s.newID()
	if err != nil {
		return nil, fmt.Errorf("generate entry id: %w", err)
	}
	return e.WithID(id), nil
}
