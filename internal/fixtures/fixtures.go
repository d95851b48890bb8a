// Package fixtures carga los datos de arranque (pacientes y catálogo de
// diagnósticos) embebidos en el binario.
package fixtures

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"patientor/internal/domain/diagnoses"
	"patientor/internal/domain/patients"
)

var (
	//go:embed patients.json
	patientsJSON []byte

	//go:embed diagnoses.json
	diagnosesJSON []byte
)

// Patients decodifica los pacientes embebidos. Cada paciente pasa por
// ValidateNew y cada entry por el mismo dispatcher que la API.
func Patients() ([]patients.Patient, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(patientsJSON, &raws); err != nil {
		return nil, fmt.Errorf("decode patients fixture: %w", err)
	}

	out := make([]patients.Patient, 0, len(raws))
	for i, r := range raws {
		var raw any
		if err := json.Unmarshal(r, &raw); err != nil {
			return nil, fmt.Errorf("patient %d: %w", i, err)
		}
		if _, err := patients.ValidateNew(raw); err != nil {
			return nil, fmt.Errorf("patient %d: %w", i, err)
		}

		var p patients.Patient
		if err := json.Unmarshal(r, &p); err != nil {
			return nil, fmt.Errorf("patient %d: %w", i, err)
		}
		out = append(out, p)
	}
	return out, nil
}

func Diagnoses() ([]diagnoses.Diagnosis, error) {
	var out []diagnoses.Diagnosis
	if err := json.Unmarshal(diagnosesJSON, &out); err != nil {
		return nil, fmt.Errorf("decode diagnoses fixture: %w", err)
	}
	return out, nil
}

// Seed carga ambos fixtures en los services.
func Seed(ctx context.Context, ps *patients.Service, ds *diagnoses.Service) error {
	list, err := Patients()
	if err != nil {
		return err
	}
	for _, p := range list {
		if err := ps.Seed(ctx, p); err != nil {
			return err
		}
	}

	catalog, err := Diagnoses()
	if err != nil {
		return err
	}
	return ds.Load(ctx, catalog)
}
