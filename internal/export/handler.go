package export

import (
	"bytes"
	"net/http"

	"patientor/internal/domain/patients"
	"patientor/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

const contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func RegisterRoutes(r chi.Router, svc *patients.Service, log logger.Logger) {
	if log == nil {
		log = logger.Nop()
	}
	r.Get("/api/patients/export", exportPatientsHandler(svc, log))
}

// exportPatientsHandler godoc
// @Summary Exportar pacientes
// @Description Workbook xlsx con las hojas Patients (sin SSN) y Entries.
// @Tags export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Failure 500 {string} string "internal error"
// @Router /patients/export [get]
func exportPatientsHandler(svc *patients.Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.All(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		// se arma en memoria para poder responder 500 si falla
		var buf bytes.Buffer
		if err := Write(&buf, list); err != nil {
			log.Error("export failed", map[string]any{"err": err.Error()})
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", contentTypeXLSX)
		w.Header().Set("Content-Disposition", `attachment; filename="patients.xlsx"`)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(buf.Bytes())
	}
}
