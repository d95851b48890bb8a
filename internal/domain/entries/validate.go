package entries

import (
	"errors"

	"patientor/internal/domain/validation"
)

// ErrUnknownEntryType: falta "type" o no es uno de los tipos conocidos.
// Es terminal: no se valida ningún otro campo.
var ErrUnknownEntryType = errors.New("invalid entry type")

const (
	MsgDescriptionRequired = "Description is required"
	MsgInvalidDate         = "Invalid date format"
	MsgSpecialistRequired  = "Specialist is required"
	MsgInvalidDischarge    = "Invalid discharge date"
	MsgCriteriaRequired    = "Discharge criteria is required"
	MsgEmployerRequired    = "Employer name is required"
	MsgInvalidStartDate    = "Invalid start date"
	MsgInvalidEndDate      = "Invalid end date"
)

type variantFunc func(rep *validation.Report, raw map[string]any, base BaseEntry) Entry

var variants = map[EntryType]variantFunc{
	EntryTypeHospital:               validateHospital,
	EntryTypeOccupationalHealthcare: validateOccupational,
	EntryTypeHealthCheck:            validateHealthCheck,
}

// Validate convierte un payload no tipado en una Entry sin id.
// Devuelve ErrUnknownEntryType o *validation.Error con todos los issues.
// Un "id" enviado por el cliente se ignora.
func Validate(raw any) (Entry, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, ErrUnknownEntryType
	}

	typ, _ := obj["type"].(string)
	variant, ok := variants[EntryType(typ)]
	if !ok {
		return nil, ErrUnknownEntryType
	}

	var rep validation.Report
	base := validateBase(&rep, obj)
	e := variant(&rep, obj, base)

	if err := rep.Err(); err != nil {
		return nil, err
	}
	return e, nil
}

func validateBase(rep *validation.Report, raw map[string]any) BaseEntry {
	var (
		b  BaseEntry
		is *validation.Issue
	)

	b.Description, is = validation.NonEmptyString(validation.Lookup(raw, nil, "description"), MsgDescriptionRequired)
	rep.Add(is)

	b.Date, is = validation.ParsableDate(validation.Lookup(raw, nil, "date"), MsgInvalidDate)
	rep.Add(is)

	b.Specialist, is = validation.NonEmptyString(validation.Lookup(raw, nil, "specialist"), MsgSpecialistRequired)
	rep.Add(is)

	codes, issues := validation.StringSlice(validation.Lookup(raw, nil, "diagnosisCodes"))
	rep.AddAll(issues)
	b.DiagnosisCodes = codes

	return b
}

func validateHospital(rep *validation.Report, raw map[string]any, base BaseEntry) Entry {
	e := HospitalEntry{BaseEntry: base}

	f := validation.Lookup(raw, nil, "discharge")
	obj, is := validation.Object(f)
	if is != nil {
		rep.Add(is)
		return e
	}

	e.Discharge.Date, is = validation.ParsableDate(validation.Lookup(obj, f.Path, "date"), MsgInvalidDischarge)
	rep.Add(is)
	e.Discharge.Criteria, is = validation.NonEmptyString(validation.Lookup(obj, f.Path, "criteria"), MsgCriteriaRequired)
	rep.Add(is)

	return e
}

func validateOccupational(rep *validation.Report, raw map[string]any, base BaseEntry) Entry {
	e := OccupationalHealthcareEntry{BaseEntry: base}

	var is *validation.Issue
	e.EmployerName, is = validation.NonEmptyString(validation.Lookup(raw, nil, "employerName"), MsgEmployerRequired)
	rep.Add(is)

	// sickLeave solo cuenta si vienen ambas fechas; si falta alguna se descarta entero.
	f := validation.Lookup(raw, nil, "sickLeave")
	obj, ok := f.Value.(map[string]any)
	if !ok {
		return e
	}
	start := validation.Lookup(obj, f.Path, "startDate")
	end := validation.Lookup(obj, f.Path, "endDate")
	if !present(start) || !present(end) {
		return e
	}

	var sl SickLeave
	var startIs, endIs *validation.Issue
	sl.StartDate, startIs = validation.ParsableDate(start, MsgInvalidStartDate)
	sl.EndDate, endIs = validation.ParsableDate(end, MsgInvalidEndDate)
	rep.Add(startIs, endIs)
	if startIs == nil && endIs == nil {
		e.SickLeave = &sl
	}

	return e
}

func validateHealthCheck(rep *validation.Report, raw map[string]any, base BaseEntry) Entry {
	e := HealthCheckEntry{BaseEntry: base}

	n, issues := validation.BoundedInt(validation.Lookup(raw, nil, "healthCheckRating"), int(RatingHealthy), int(RatingCriticalRisk))
	rep.AddAll(issues)
	e.HealthCheckRating = HealthCheckRating(n)

	return e
}

func present(f validation.Field) bool {
	return f.Present && f.Value != nil
}
