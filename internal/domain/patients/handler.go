package patients

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"patientor/internal/domain/entries"
	"patientor/internal/domain/validation"
	"patientor/internal/platform/logger"
	"patientor/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
)

const (
	msgPatientNotFound = "Patient not found"

	// mismo límite que express.json()
	maxBodyBytes = 100 << 10
)

// CodeCatalog informa qué diagnosisCodes no están en el catálogo.
// Es solo informativo: nunca rechaza una entry.
type CodeCatalog interface {
	Unknown(ctx context.Context, codes []string) ([]string, error)
}

func RegisterRoutes(r chi.Router, svc *Service, catalog CodeCatalog, log logger.Logger, m *metrics.Metrics) {
	if log == nil {
		log = logger.Nop()
	}

	r.Get("/api/patients", listPatientsHandler(svc))
	r.Post("/api/patients", createPatientHandler(svc, log, m))
	r.Get("/api/patients/{id}", getPatientHandler(svc, m))
	r.Post("/api/patients/{id}/entries", addEntryHandler(svc, catalog, log, m))
}

// listPatientsHandler godoc
// @Summary Listar pacientes
// @Description Proyección sin SSN ni entries, en orden de alta.
// @Tags patients
// @Produce json
// @Success 200 {array} NonSensitivePatient
// @Failure 500 {string} string "internal error"
// @Router /patients [get]
func listPatientsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

// getPatientHandler godoc
// @Summary Obtener paciente
// @Tags patients
// @Produce json
// @Param id path string true "Patient ID"
// @Success 200 {object} Patient
// @Failure 404 {string} string "Patient not found"
// @Router /patients/{id} [get]
func getPatientHandler(svc *Service, m *metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "id"))
		if errors.Is(err, ErrNotFound) {
			m.IncNotFound("patient")
			http.Error(w, msgPatientNotFound, http.StatusNotFound)
			return
		}
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, p)
	}
}

// createPatientHandler godoc
// @Summary Crear paciente
// @Description Valida el payload y devuelve el registro completo con entries vacías.
// @Description Responde 201 (no 200); los clientes existentes aceptan cualquier 2xx.
// @Tags patients
// @Accept json
// @Produce json
// @Param body body object true "name, dateOfBirth, ssn, gender, occupation"
// @Success 201 {object} Patient
// @Failure 400 {string} string "validation issues"
// @Failure 413 {string} string "payload too large"
// @Router /patients [post]
func createPatientHandler(svc *Service, log logger.Logger, m *metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, ok := decodeBody(w, r, "patient", m)
		if !ok {
			return
		}

		in, err := ValidateNew(raw)
		if err != nil {
			m.IncValidationFailure("patient", "invalid_fields")
			log.Debug("patient rejected", map[string]any{"err": err.Error()})
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		p, err := svc.Create(r.Context(), in)
		if err != nil {
			log.Error("create patient failed", map[string]any{"err": err.Error()})
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		m.IncPatientsCreated()
		log.Info("patient created", map[string]any{"patient_id": p.ID})
		writeJSON(w, http.StatusCreated, p)
	}
}

// addEntryHandler godoc
// @Summary Agregar entry a un paciente
// @Description El payload se valida antes de buscar al paciente.
// @Description Responde 201 (no 200); los clientes existentes aceptan cualquier 2xx.
// @Description Códigos fuera del catálogo de diagnósticos solo se registran en el log.
// @Tags entries
// @Accept json
// @Produce json
// @Param id path string true "Patient ID"
// @Param body body object true "Hospital | OccupationalHealthcare | HealthCheck"
// @Success 201 {object} object
// @Failure 400 {string} string "validation issues or invalid entry type"
// @Failure 404 {string} string "Patient not found"
// @Failure 413 {string} string "payload too large"
// @Router /patients/{id}/entries [post]
func addEntryHandler(svc *Service, catalog CodeCatalog, log logger.Logger, m *metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		patientID := chi.URLParam(r, "id")
		l := log.With(map[string]any{"patient_id": patientID})

		raw, ok := decodeBody(w, r, "entry", m)
		if !ok {
			return
		}

		e, err := entries.Validate(raw)
		if err != nil {
			var verr *validation.Error
			switch {
			case errors.Is(err, entries.ErrUnknownEntryType):
				m.IncValidationFailure("entry", "unknown_type")
			case errors.As(err, &verr):
				m.IncValidationFailure("entry", "invalid_fields")
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}
			l.Debug("entry rejected", map[string]any{"err": err.Error()})
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		created, err := svc.AddEntry(r.Context(), patientID, e)
		if errors.Is(err, ErrNotFound) {
			m.IncNotFound("patient")
			http.Error(w, msgPatientNotFound, http.StatusNotFound)
			return
		}
		if err != nil {
			l.Error("add entry failed", map[string]any{"err": err.Error()})
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		m.IncEntriesCreated(string(created.Type()))
		l.Info("entry created", map[string]any{
			"entry_id":   created.Base().ID,
			"entry_type": string(created.Type()),
		})
		warnUnknownCodes(r.Context(), catalog, l, created)
		writeJSON(w, http.StatusCreated, created)
	}
}

func warnUnknownCodes(ctx context.Context, catalog CodeCatalog, l logger.Logger, e entries.Entry) {
	codes := e.Base().DiagnosisCodes
	if catalog == nil || len(codes) == 0 {
		return
	}
	unknown, err := catalog.Unknown(ctx, codes)
	if err != nil {
		l.Warn("diagnosis catalog lookup failed", map[string]any{"err": err.Error()})
		return
	}
	if len(unknown) > 0 {
		l.Warn("entry has codes outside the diagnosis catalog", map[string]any{
			"entry_id": e.Base().ID,
			"codes":    unknown,
		})
	}
}

// decodeBody lee un único valor JSON. Cuerpo demasiado grande => 413;
// JSON inválido o contenido extra después del valor => 400 "invalid json".
func decodeBody(w http.ResponseWriter, r *http.Request, resource string, m *metrics.Metrics) (any, bool) {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))

	var raw any
	err := dec.Decode(&raw)
	if err == nil {
		var extra json.RawMessage
		if err = dec.Decode(&extra); err == io.EOF {
			return raw, true
		} else if err == nil {
			err = errors.New("trailing data")
		}
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		m.IncValidationFailure(resource, "too_large")
		http.Error(w, "payload too large", http.StatusRequestEntityTooLarge)
		return nil, false
	}
	m.IncValidationFailure(resource, "invalid_json")
	http.Error(w, "invalid json", http.StatusBadRequest)
	return nil, false
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
