package entries

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type typeCounter map[EntryType]int

func (c typeCounter) VisitHospital(e HospitalEntry) { c[e.Type()]++ }
func (c typeCounter) VisitOccupationalHealthcare(e OccupationalHealthcareEntry) {
	c[e.Type()]++
}
func (c typeCounter) VisitHealthCheck(e HealthCheckEntry) { c[e.Type()]++ }

func TestMarshalJSON_AddsDiscriminant(t *testing.T) {
	e := HospitalEntry{
		BaseEntry: BaseEntry{ID: "e-1", Description: "d", Date: "2015-01-02", Specialist: "MD House"},
		Discharge: Discharge{Date: "2015-01-16", Criteria: "Thumb has healed."},
	}

	b, err := json.Marshal(e)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, "Hospital", got["type"])
	assert.Equal(t, "e-1", got["id"])
	assert.Equal(t, []any{}, got["diagnosisCodes"])
	assert.Equal(t, map[string]any{"date": "2015-01-16", "criteria": "Thumb has healed."}, got["discharge"])
}

func TestMarshalJSON_OmitsMissingSickLeave(t *testing.T) {
	b, err := json.Marshal(OccupationalHealthcareEntry{EmployerName: "FBI"})
	require.NoError(t, err)
	assert.NotContains(t, string(b), "sickLeave")
	assert.Contains(t, string(b), `"type":"OccupationalHealthcare"`)
}

func TestParse_KeepsIDAndRoundTrips(t *testing.T) {
	in := HealthCheckEntry{
		BaseEntry:         BaseEntry{ID: "b4f4eca1", Description: "Yearly control visit.", Date: "2019-10-20", Specialist: "MD House", DiagnosisCodes: []string{}},
		HealthCheckRating: RatingLowRisk,
	}
	b, err := json.Marshal(in)
	require.NoError(t, err)

	out, err := Parse(b)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestParse_RejectsInvalid(t *testing.T) {
	_, err := Parse([]byte(`{"type":"HealthCheck","id":"x","description":"d","date":"2019-10-20","specialist":"s","healthCheckRating":9}`))
	require.Error(t, err)

	_, err = Parse([]byte(`{`))
	require.Error(t, err)
}

func TestParseList(t *testing.T) {
	list, err := ParseList([]byte(`[
		{"id":"1","type":"HealthCheck","description":"d","date":"2019-10-20","specialist":"s","healthCheckRating":0},
		{"id":"2","type":"OccupationalHealthcare","description":"d","date":"2019-09-10","specialist":"s","employerName":"FBI"}
	]`))
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "1", list[0].Base().ID)
	assert.Equal(t, EntryTypeOccupationalHealthcare, list[1].Type())

	_, err = ParseList([]byte(`[{"id":"3","type":"Nope"}]`))
	assert.ErrorIs(t, err, ErrUnknownEntryType)
}

func TestWithID_DoesNotShareState(t *testing.T) {
	orig := OccupationalHealthcareEntry{
		BaseEntry:    BaseEntry{DiagnosisCodes: []string{"Z57.1"}},
		EmployerName: "HyPD",
		SickLeave:    &SickLeave{StartDate: "2019-08-05", EndDate: "2019-08-28"},
	}

	withID := orig.WithID("new-id").(OccupationalHealthcareEntry)
	withID.DiagnosisCodes[0] = "changed"
	withID.SickLeave.EndDate = "changed"

	assert.Empty(t, orig.ID)
	assert.Equal(t, "new-id", withID.ID)
	assert.Equal(t, "Z57.1", orig.DiagnosisCodes[0])
	assert.Equal(t, "2019-08-28", orig.SickLeave.EndDate)
}

func TestAccept_DispatchesEveryVariant(t *testing.T) {
	list := []Entry{HospitalEntry{}, OccupationalHealthcareEntry{}, HealthCheckEntry{}, HealthCheckEntry{}}

	c := typeCounter{}
	for _, e := range list {
		e.Accept(c)
	}

	assert.Equal(t, typeCounter{
		EntryTypeHospital:               1,
		EntryTypeOccupationalHealthcare: 1,
		EntryTypeHealthCheck:            2,
	}, c)
	assert.Len(t, Types(), 3)
}

func TestHealthCheckRating_String(t *testing.T) {
	assert.Equal(t, "Healthy", RatingHealthy.String())
	assert.Equal(t, "CriticalRisk", RatingCriticalRisk.String())
	assert.Equal(t, "Unknown", HealthCheckRating(7).String())
}

func TestClone_KeepsIDAndCopiesSlices(t *testing.T) {
	in := OccupationalHealthcareEntry{
		BaseEntry:    BaseEntry{ID: "e-1", DiagnosisCodes: []string{"Z57.1"}},
		EmployerName: "HyPD",
		SickLeave:    &SickLeave{StartDate: "2019-08-05", EndDate: "2019-08-28"},
	}

	out := Clone(in).(OccupationalHealthcareEntry)
	assert.Equal(t, in, out)

	out.DiagnosisCodes[0] = "changed"
	out.SickLeave.EndDate = "changed"
	assert.Equal(t, "Z57.1", in.DiagnosisCodes[0])
	assert.Equal(t, "2019-08-28", in.SickLeave.EndDate)

	assert.Nil(t, Clone(nil))
}
