package patients

import (
	"errors"
	"testing"

	"patientor/internal/domain/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateNew_OK(t *testing.T) {
	np, err := ValidateNew(map[string]any{
		"name":        "Martin Riggs",
		"dateOfBirth": "1979-01-30",
		"ssn":         "300179-77A",
		"gender":      "male",
		"occupation":  "Cop",
		"entries":     []any{"ignored"},
	})
	require.NoError(t, err)
	assert.Equal(t, NewPatient{
		Name:        "Martin Riggs",
		DateOfBirth: "1979-01-30",
		SSN:         "300179-77A",
		Gender:      GenderMale,
		Occupation:  "Cop",
	}, np)
}

func TestValidateNew_CollectsEveryIssue(t *testing.T) {
	_, err := ValidateNew(map[string]any{
		"name":        "",
		"dateOfBirth": "not a date",
		"gender":      "unknown",
		"occupation":  42.0,
	})
	require.Error(t, err)

	var verr *validation.Error
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Issues, 5)

	assert.Equal(t,
		"name: Name is required, dateOfBirth: Invalid date format, ssn: Required, "+
			"gender: Invalid gender value, occupation: Expected string, received number",
		err.Error())
	assert.Contains(t, verr.Issues, validation.Issue{Path: validation.Path{"ssn"}, Kind: validation.KindRequiredField, Message: "Required"})
	assert.Contains(t, verr.Issues, validation.Issue{Path: validation.Path{"gender"}, Kind: validation.KindInvalidEnum, Message: MsgInvalidGender})
	assert.Contains(t, verr.Issues, validation.Issue{Path: validation.Path{"dateOfBirth"}, Kind: validation.KindInvalidDate, Message: MsgInvalidDateOfBirth})
}

func TestValidateNew_NotAnObject(t *testing.T) {
	_, err := ValidateNew([]any{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Expected object, received array")
}
