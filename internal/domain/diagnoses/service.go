package diagnoses

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrNotFound     = errors.New("diagnosis not found")
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Diagnosis, error) {
	return s.repo.List(ctx)
}

// Load reemplaza el catálogo. Cada diagnóstico necesita code y name.
func (s *Service) Load(ctx context.Context, items []Diagnosis) error {
	for _, d := range items {
		if strings.TrimSpace(d.Code) == "" || strings.TrimSpace(d.Name) == "" {
			return ErrInvalidInput
		}
	}
	return s.repo.Load(ctx, items)
}

// Unknown devuelve los códigos que no están en el catálogo. Es solo
// informativo: las entries no se rechazan por esto.
func (s *Service) Unknown(ctx context.Context, codes []string) ([]string, error) {
	out := make([]string, 0)
	for _, c := range codes {
		_, err := s.repo.GetByCode(ctx, c)
		if errors.Is(err, ErrNotFound) {
			out = append(out, c)
			continue
		}
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
