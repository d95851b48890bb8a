package entries

// Entry es una visita clínica de un paciente. El conjunto de variantes es
// cerrado: solo este paquete puede implementarla.
type Entry interface {
	Type() EntryType
	Base() BaseEntry

	// WithID devuelve una copia con el id asignado por el store.
	WithID(id string) Entry

	// Accept despacha a la variante concreta.
	Accept(v Visitor)

	isEntry()
}

// Visitor tiene un método por variante. Agregar una variante nueva rompe
// la compilación de todos los consumidores hasta que la manejen.
type Visitor interface {
	VisitHospital(e HospitalEntry)
	VisitOccupationalHealthcare(e OccupationalHealthcareEntry)
	VisitHealthCheck(e HealthCheckEntry)
}

// BaseEntry son los campos comunes a todas las variantes.
type BaseEntry struct {
	ID             string   `json:"id,omitempty"`
	Description    string   `json:"description"`
	Date           string   `json:"date"`
	Specialist     string   `json:"specialist"`
	DiagnosisCodes []string `json:"diagnosisCodes"`
}

type Discharge struct {
	Date     string `json:"date"`
	Criteria string `json:"criteria"`
}

type SickLeave struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type HospitalEntry struct {
	BaseEntry
	Discharge Discharge `json:"discharge"`
}

type OccupationalHealthcareEntry struct {
	BaseEntry
	EmployerName string     `json:"employerName"`
	SickLeave    *SickLeave `json:"sickLeave,omitempty"`
}

type HealthCheckEntry struct {
	BaseEntry
	HealthCheckRating HealthCheckRating `json:"healthCheckRating"`
}

func (HospitalEntry) Type() EntryType               { return EntryTypeHospital }
func (OccupationalHealthcareEntry) Type() EntryType { return EntryTypeOccupationalHealthcare }
func (HealthCheckEntry) Type() EntryType            { return EntryTypeHealthCheck }

func (e HospitalEntry) Base() BaseEntry               { return e.BaseEntry.clone() }
func (e OccupationalHealthcareEntry) Base() BaseEntry { return e.BaseEntry.clone() }
func (e HealthCheckEntry) Base() BaseEntry            { return e.BaseEntry.clone() }

func (e HospitalEntry) WithID(id string) Entry {
	e.BaseEntry = e.BaseEntry.clone()
	e.ID = id
	return e
}

func (e OccupationalHealthcareEntry) WithID(id string) Entry {
	e.BaseEntry = e.BaseEntry.clone()
	e.ID = id
	if e.SickLeave != nil {
		sl := *e.SickLeave
		e.SickLeave = &sl
	}
	return e
}

func (e HealthCheckEntry) WithID(id string) Entry {
	e.BaseEntry = e.BaseEntry.clone()
	e.ID = id
	return e
}

func (e HospitalEntry) Accept(v Visitor)               { v.VisitHospital(e) }
func (e OccupationalHealthcareEntry) Accept(v Visitor) { v.VisitOccupationalHealthcare(e) }
func (e HealthCheckEntry) Accept(v Visitor)            { v.VisitHealthCheck(e) }

func (HospitalEntry) isEntry()               {}
func (OccupationalHealthcareEntry) isEntry() {}
func (HealthCheckEntry) isEntry()            {}

// Clone devuelve una copia profunda de e conservando su id.
func Clone(e Entry) Entry {
	if e == nil {
		return nil
	}
	return e.WithID(e.Base().ID)
}

func (b BaseEntry) clone() BaseEntry {
	codes := make([]string, len(b.DiagnosisCodes))
	copy(codes, b.DiagnosisCodes)
	b.DiagnosisCodes = codes
	return b
}
