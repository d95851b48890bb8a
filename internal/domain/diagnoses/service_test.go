package diagnoses

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRepo struct {
	items []Diagnosis
}

func (r *testRepo) List(ctx context.Context) ([]Diagnosis, error) {
	out := make([]Diagnosis, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *testRepo) GetByCode(ctx context.Context, code string) (Diagnosis, error) {
	for _, d := range r.items {
		if d.Code == code {
			return d, nil
		}
	}
	return Diagnosis{}, ErrNotFound
}

func (r *testRepo) Load(ctx context.Context, items []Diagnosis) error {
	r.items = items
	return nil
}

func TestLoad_RejectsIncompleteItems(t *testing.T) {
	svc := NewService(&testRepo{})

	err := svc.Load(context.Background(), []Diagnosis{{Code: "L20", Name: ""}})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUnknown(t *testing.T) {
	ctx := context.Background()
	svc := NewService(&testRepo{})
	require.NoError(t, svc.Load(ctx, []Diagnosis{
		{Code: "S62.5", Name: "Fracture of thumb", Latin: "Fractura [ossis] pollicis"},
		{Code: "Z57.1", Name: "Occupational exposure to radiation"},
	}))

	unknown, err := svc.Unknown(ctx, []string{"Z57.1", "X00", "S62.5", "Y99"})
	require.NoError(t, err)
	assert.Equal(t, []string{"X00", "Y99"}, unknown)
}

func TestListHandler(t *testing.T) {
	svc := NewService(&testRepo{items: []Diagnosis{
		{Code: "L20", Name: "Atopic dermatitis", Latin: "Atopic dermatitis"},
		{Code: "Z74.3", Name: "Need for continuous supervision"},
	}})

	r := chi.NewRouter()
	RegisterRoutes(r, svc)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/diagnoses", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var out []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out, 2)
	assert.Equal(t, "Atopic dermatitis", out[0]["latin"])
	assert.NotContains(t, out[1], "latin")
}
