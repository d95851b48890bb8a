// Package export arma un workbook xlsx con pacientes y entries.
package export

import (
	"fmt"
	"io"
	"strings"

	"patientor/internal/domain/entries"
	"patientor/internal/domain/patients"

	"github.com/tealeg/xlsx"
)

const (
	SheetPatients = "Patients"
	SheetEntries  = "Entries"
)

var (
	patientHeader = []string{"id", "name", "dateOfBirth", "gender", "occupation", "entries"}
	entryHeader   = []string{"patientId", "id", "type", "date", "description", "specialist", "diagnosisCodes", "details"}
)

// Workbook arma el archivo. La hoja Patients usa la proyección sin SSN.
func Workbook(list []patients.Patient) (*xlsx.File, error) {
	file := xlsx.NewFile()

	ps, err := file.AddSheet(SheetPatients)
	if err != nil {
		return nil, fmt.Errorf("add sheet %s: %w", SheetPatients, err)
	}
	es, err := file.AddSheet(SheetEntries)
	if err != nil {
		return nil, fmt.Errorf("add sheet %s: %w", SheetEntries, err)
	}

	addRow(ps, patientHeader...)
	addRow(es, entryHeader...)

	for _, p := range list {
		ns := p.NonSensitive()
		row := addRow(ps, ns.ID, ns.Name, ns.DateOfBirth, string(ns.Gender), ns.Occupation)
		row.AddCell().SetInt(len(p.Entries))

		for _, e := range p.Entries {
			b := e.Base()
			addRow(es,
				p.ID,
				b.ID,
				string(e.Type()),
				b.Date,
				b.Description,
				b.Specialist,
				strings.Join(b.DiagnosisCodes, ", "),
				Details(e),
			)
		}
	}
	return file, nil
}

// Write serializa el workbook en w.
func Write(w io.Writer, list []patients.Patient) error {
	file, err := Workbook(list)
	if err != nil {
		return err
	}
	return file.Write(w)
}

func addRow(sheet *xlsx.Sheet, values ...string) *xlsx.Row {
	row := sheet.AddRow()
	for _, v := range values {
		row.AddCell().Value = v
	}
	return row
}

// Details resume los campos propios de cada tipo de entry.
func Details(e entries.Entry) string {
	d := &detailer{}
	e.Accept(d)
	return d.out
}

type detailer struct {
	out string
}

func (d *detailer) VisitHospital(e entries.HospitalEntry) {
	d.out = fmt.Sprintf("discharge %s: %s", e.Discharge.Date, e.Discharge.Criteria)
}

func (d *detailer) VisitOccupationalHealthcare(e entries.OccupationalHealthcareEntry) {
	d.out = "employer " + e.EmployerName
	if e.SickLeave != nil {
		d.out += fmt.Sprintf(", sick leave %s to %s", e.SickLeave.StartDate, e.SickLeave.EndDate)
	}
}

func (d *detailer) VisitHealthCheck(e entries.HealthCheckEntry) {
	d.out = fmt.Sprintf("rating %d (%s)", int(e.HealthCheckRating), e.HealthCheckRating)
}
