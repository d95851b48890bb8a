package entries

import (
	"encoding/json"
	"fmt"
)

// El "type" se agrega al serializar; los structs no lo guardan para que no
// pueda quedar desalineado con la variante.

func (e HospitalEntry) MarshalJSON() ([]byte, error) {
	type plain HospitalEntry
	e.BaseEntry = e.BaseEntry.clone()
	return json.Marshal(struct {
		Type EntryType `json:"type"`
		plain
	}{e.Type(), plain(e)})
}

func (e OccupationalHealthcareEntry) MarshalJSON() ([]byte, error) {
	type plain OccupationalHealthcareEntry
	e.BaseEntry = e.BaseEntry.clone()
	return json.Marshal(struct {
		Type EntryType `json:"type"`
		plain
	}{e.Type(), plain(e)})
}

func (e HealthCheckEntry) MarshalJSON() ([]byte, error) {
	type plain HealthCheckEntry
	e.BaseEntry = e.BaseEntry.clone()
	return json.Marshal(struct {
		Type EntryType `json:"type"`
		plain
	}{e.Type(), plain(e)})
}

// Parse decodifica una entry ya identificada (fixtures, respuestas de la API)
// pasando por las mismas reglas que Validate, y conserva su id.
func Parse(data []byte) (Entry, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode entry: %w", err)
	}

	e, err := Validate(raw)
	if err != nil {
		return nil, err
	}

	if obj, ok := raw.(map[string]any); ok {
		if id, ok := obj["id"].(string); ok && id != "" {
			e = e.WithID(id)
		}
	}
	return e, nil
}

// ParseList decodifica un array JSON de entries.
func ParseList(data []byte) ([]Entry, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("decode entries: %w", err)
	}

	out := make([]Entry, 0, len(raws))
	for i, r := range raws {
		e, err := Parse(r)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		out = append(out, e)
	}
	return out, nil
}
