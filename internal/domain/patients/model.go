package patients

import (
	"encoding/json"

	"patientor/internal/domain/entries"
)

// Gender define el género registrado del paciente.
// @Enum male, female, other
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

func Genders() []Gender {
	return []Gender{GenderMale, GenderFemale, GenderOther}
}

// Patient es el registro completo, incluyendo SSN y entries.
type Patient struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	DateOfBirth string          `json:"dateOfBirth"`
	SSN         string          `json:"ssn"`
	Gender      Gender          `json:"gender"`
	Occupation  string          `json:"occupation"`
	Entries     []entries.Entry `json:"entries"`
}

// NonSensitivePatient es la proyección para listados: sin SSN ni entries.
type NonSensitivePatient struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DateOfBirth string `json:"dateOfBirth"`
	Gender      Gender `json:"gender"`
	Occupation  string `json:"occupation"`
}

// NewPatient son los datos validados para crear un paciente.
type NewPatient struct {
	Name        string
	DateOfBirth string
	SSN         string
	Gender      Gender
	Occupation  string
}

func (p Patient) NonSensitive() NonSensitivePatient {
	return NonSensitivePatient{
		ID:          p.ID,
		Name:        p.Name,
		DateOfBirth: p.DateOfBirth,
		Gender:      p.Gender,
		Occupation:  p.Occupation,
	}
}

// Clone copia las entries (incluidos sus slices internos) para no
// compartir memoria con el store.
func (p Patient) Clone() Patient {
	list := make([]entries.Entry, 0, len(p.Entries))
	for _, e := range p.Entries {
		list = append(list, entries.Clone(e))
	}
	p.Entries = list
	return p
}

// UnmarshalJSON decodifica entries polimórficas pasando por entries.Parse.
func (p *Patient) UnmarshalJSON(b []byte) error {
	type plain Patient
	var aux struct {
		plain
		Entries json.RawMessage `json:"entries"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}

	list := []entries.Entry{}
	if len(aux.Entries) > 0 {
		parsed, err := entries.ParseList(aux.Entries)
		if err != nil {
			return err
		}
		list = parsed
	}

	*p = Patient(aux.plain)
	p.Entries = list
	return nil
}
