package entries

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"patientor/internal/domain/validation"
)

// decode simula lo que llega por HTTP: JSON decodificado a any.
func decode(t *testing.T, s string) any {
	t.Helper()
	var v any
	require.NoError(t, json.Unmarshal([]byte(s), &v))
	return v
}

func validationErr(t *testing.T, err error) *validation.Error {
	t.Helper()
	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	return verr
}

func TestValidate_UnknownType(t *testing.T) {
	payloads := []string{
		`{"type":"Surgery","description":"","date":"nope"}`,
		`{"description":"d","date":"2023-10-01","specialist":"s"}`,
		`{"type":3}`,
		`["Hospital"]`,
		`"Hospital"`,
		`null`,
	}

	for _, p := range payloads {
		t.Run(p, func(t *testing.T) {
			e, err := Validate(decode(t, p))
			assert.Nil(t, e)
			// terminal: no se reportan issues de campos
			assert.ErrorIs(t, err, ErrUnknownEntryType)
			var verr *validation.Error
			assert.False(t, errors.As(err, &verr))
		})
	}
}

func TestValidate_Hospital(t *testing.T) {
	e, err := Validate(decode(t, `{
		"type": "Hospital",
		"id": "caller-chosen",
		"description": "Healing time appr. 2 weeks.",
		"date": "2015-01-02",
		"specialist": "MD House",
		"diagnosisCodes": ["S62.5"],
		"discharge": {"date": "2015-01-16", "criteria": "Thumb has healed."}
	}`))
	require.NoError(t, err)

	h, ok := e.(HospitalEntry)
	require.True(t, ok, "expected HospitalEntry, got %T", e)
	assert.Equal(t, EntryTypeHospital, h.Type())
	assert.Empty(t, h.ID, "caller id must be ignored")
	assert.Equal(t, Discharge{Date: "2015-01-16", Criteria: "Thumb has healed."}, h.Discharge)
	assert.Equal(t, []string{"S62.5"}, h.DiagnosisCodes)
}

// la fecha principal usa su propio mensaje, distinto de las anidadas
func TestValidate_InvalidPrimaryDate(t *testing.T) {
	_, err := Validate(decode(t, `{
		"type": "Hospital",
		"description": "d",
		"date": "not-a-date",
		"specialist": "s",
		"discharge": {"date": "2023-10-02", "criteria": "c"}
	}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "date: Invalid date format")
	assert.Contains(t, validationErr(t, err).Issues, validation.Issue{Path: validation.Path{"date"}, Kind: validation.KindInvalidDate, Message: MsgInvalidDate})
}

func TestValidate_HealthCheckRatingAboveRange(t *testing.T) {
	_, err := Validate(decode(t, `{
		"type": "HealthCheck",
		"description": "d",
		"date": "2023-10-01",
		"specialist": "s",
		"healthCheckRating": 5
	}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "healthCheckRating: Number must be less than or equal to 3")
	assert.Contains(t, validationErr(t, err).Issues, validation.Issue{
		Path:    validation.Path{"healthCheckRating"},
		Kind:    validation.KindOutOfRange,
		Message: "Number must be less than or equal to 3",
	})
}

func TestValidate_HealthCheckRatings(t *testing.T) {
	for _, rating := range []int{0, 1, 2, 3} {
		payload := map[string]any{
			"type":              "HealthCheck",
			"description":       "d",
			"date":              "2023-10-01",
			"specialist":        "s",
			"healthCheckRating": float64(rating),
		}
		e, err := Validate(payload)
		require.NoError(t, err)
		assert.Equal(t, HealthCheckRating(rating), e.(HealthCheckEntry).HealthCheckRating)
	}

	for _, bad := range []any{float64(-1), float64(4), 1.5, "2", nil} {
		payload := map[string]any{
			"type":              "HealthCheck",
			"description":       "d",
			"date":              "2023-10-01",
			"specialist":        "s",
			"healthCheckRating": bad,
		}
		_, err := Validate(payload)
		require.Error(t, err, "rating %v", bad)
		assert.Contains(t, err.Error(), "healthCheckRating: ")
	}
}

func TestValidate_MissingDiagnosisCodesDefaultsToEmpty(t *testing.T) {
	e, err := Validate(decode(t, `{
		"type": "HealthCheck",
		"description": "d",
		"date": "2023-10-01",
		"specialist": "s",
		"healthCheckRating": 0
	}`))
	require.NoError(t, err)
	assert.NotNil(t, e.Base().DiagnosisCodes)
	assert.Empty(t, e.Base().DiagnosisCodes)

	b, err := json.Marshal(e)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"diagnosisCodes":[]`)
}

func TestValidate_DiagnosisCodesNonArrayIsIgnored(t *testing.T) {
	e, err := Validate(decode(t, `{
		"type": "HealthCheck",
		"description": "d",
		"date": "2023-10-01",
		"specialist": "s",
		"healthCheckRating": 1,
		"diagnosisCodes": "S62.5"
	}`))
	require.NoError(t, err)
	assert.Empty(t, e.Base().DiagnosisCodes)
}

func TestValidate_DiagnosisCodesMustBeStrings(t *testing.T) {
	_, err := Validate(decode(t, `{
		"type": "HealthCheck",
		"description": "d",
		"date": "2023-10-01",
		"specialist": "s",
		"healthCheckRating": 1,
		"diagnosisCodes": ["S62.5", 12]
	}`))
	require.Error(t, err)
	assert.Equal(t, "diagnosisCodes,1: Expected string, received number", err.Error())
}

func TestValidate_CollectsEveryIssueInFieldOrder(t *testing.T) {
	_, err := Validate(decode(t, `{
		"type": "Hospital",
		"description": "",
		"date": "yesterday-ish",
		"discharge": {"date": "soon", "criteria": ""}
	}`))
	require.Error(t, err)

	assert.Equal(t,
		"description: Description is required, "+
			"date: Invalid date format, "+
			"specialist: Required, "+
			"discharge,date: Invalid discharge date, "+
			"discharge,criteria: Discharge criteria is required",
		err.Error())
	assert.Len(t, validationErr(t, err).Issues, 5)
}

func TestValidate_HospitalRequiresDischarge(t *testing.T) {
	base := `"type":"Hospital","description":"d","date":"2023-10-01","specialist":"s"`

	_, err := Validate(decode(t, `{`+base+`}`))
	require.Error(t, err)
	assert.Equal(t, "discharge: Required", err.Error())

	_, err = Validate(decode(t, `{`+base+`,"discharge":"2023-10-02"}`))
	require.Error(t, err)
	assert.Equal(t, "discharge: Expected object, received string", err.Error())

	// estructura parcial: se rechaza, no se completa con defaults
	_, err = Validate(decode(t, `{`+base+`,"discharge":{"date":"2023-10-02"}}`))
	require.Error(t, err)
	assert.Equal(t, "discharge,criteria: Required", err.Error())
}

func TestValidate_Occupational(t *testing.T) {
	base := `"type":"OccupationalHealthcare","description":"d","date":"2019-08-05","specialist":"MD House"`

	t.Run("with sick leave", func(t *testing.T) {
		e, err := Validate(decode(t, `{`+base+`,"employerName":"HyPD","sickLeave":{"startDate":"2019-08-05","endDate":"2019-08-28"}}`))
		require.NoError(t, err)
		o := e.(OccupationalHealthcareEntry)
		assert.Equal(t, "HyPD", o.EmployerName)
		require.NotNil(t, o.SickLeave)
		assert.Equal(t, SickLeave{StartDate: "2019-08-05", EndDate: "2019-08-28"}, *o.SickLeave)
	})

	t.Run("partial sick leave is dropped", func(t *testing.T) {
		e, err := Validate(decode(t, `{`+base+`,"employerName":"HyPD","sickLeave":{"startDate":"not-a-date"}}`))
		require.NoError(t, err)
		assert.Nil(t, e.(OccupationalHealthcareEntry).SickLeave)
	})

	t.Run("invalid sick leave dates", func(t *testing.T) {
		_, err := Validate(decode(t, `{`+base+`,"employerName":"HyPD","sickLeave":{"startDate":"x","endDate":"y"}}`))
		require.Error(t, err)
		assert.Equal(t, "sickLeave,startDate: Invalid start date, sickLeave,endDate: Invalid end date", err.Error())
	})

	t.Run("employer required", func(t *testing.T) {
		_, err := Validate(decode(t, `{`+base+`,"employerName":""}`))
		require.Error(t, err)
		assert.Equal(t, "employerName: Employer name is required", err.Error())
	})
}
