package patients

import (
	"patientor/internal/domain/validation"
)

const (
	MsgNameRequired       = "Name is required"
	MsgInvalidDateOfBirth = "Invalid date format"
	MsgSSNRequired        = "SSN is required"
	MsgInvalidGender      = "Invalid gender value"
	MsgOccupationRequired = "Occupation is required"
)

// ValidateNew valida el payload de alta de paciente y reporta todos los
// issues juntos (*validation.Error).
func ValidateNew(raw any) (NewPatient, error) {
	var rep validation.Report

	obj, ok := raw.(map[string]any)
	if !ok {
		rep.Add(&validation.Issue{
			Kind:    validation.KindInvalidType,
			Message: "Expected object, received " + validation.TypeName(raw),
		})
		return NewPatient{}, rep.Err()
	}

	var (
		np NewPatient
		is *validation.Issue
	)

	np.Name, is = validation.NonEmptyString(validation.Lookup(obj, nil, "name"), MsgNameRequired)
	rep.Add(is)

	np.DateOfBirth, is = validation.ParsableDate(validation.Lookup(obj, nil, "dateOfBirth"), MsgInvalidDateOfBirth)
	rep.Add(is)

	np.SSN, is = validation.NonEmptyString(validation.Lookup(obj, nil, "ssn"), MsgSSNRequired)
	rep.Add(is)

	np.Gender, is = validation.EnumMember(validation.Lookup(obj, nil, "gender"), Genders(), MsgInvalidGender)
	rep.Add(is)

	np.Occupation, is = validation.NonEmptyString(validation.Lookup(obj, nil, "occupation"), MsgOccupationRequired)
	rep.Add(is)

	if err := rep.Err(); err != nil {
		return NewPatient{}, err
	}
	return np, nil
}
