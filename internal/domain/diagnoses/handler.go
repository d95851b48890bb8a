package diagnoses

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/api/diagnoses", listDiagnosesHandler(svc))
}

// listDiagnosesHandler godoc
// @Summary Listar diagnósticos
// @Description Catálogo de códigos de diagnóstico de referencia.
// @Tags diagnoses
// @Produce json
// @Success 200 {array} Diagnosis
// @Failure 500 {string} string "internal error"
// @Router /diagnoses [get]
func listDiagnosesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
