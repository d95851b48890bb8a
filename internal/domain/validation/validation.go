package validation

import (
	"strings"
)

// Kind clasifica una falla de validación de campo.
type Kind string

const (
	KindRequiredField Kind = "required_field"
	KindInvalidType   Kind = "invalid_type"
	KindInvalidDate   Kind = "invalid_date"
	KindOutOfRange    Kind = "out_of_range"
	KindInvalidEnum   Kind = "invalid_enum"
)

// Path es la ruta de un campo dentro del payload (ej: discharge -> date).
type Path []string

func (p Path) Child(key string) Path {
	out := make(Path, 0, len(p)+1)
	out = append(out, p...)
	return append(out, key)
}

// String imprime la ruta separada por comas; los clientes existentes
// esperan "discharge,date" y no "discharge.date".
func (p Path) String() string {
	return strings.Join(p, ",")
}

// Issue es una violación puntual de un campo.
type Issue struct {
	Path    Path
	Kind    Kind
	Message string
}

func (i Issue) String() string {
	return i.Path.String() + ": " + i.Message
}

// Error agrupa todas las violaciones de un payload.
type Error struct {
	Issues []Issue
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, is := range e.Issues {
		parts = append(parts, is.String())
	}
	return strings.Join(parts, ", ")
}

// Report acumula issues sin cortar en el primero.
type Report struct {
	issues []Issue
}

func (r *Report) Add(issues ...*Issue) {
	for _, is := range issues {
		if is != nil {
			r.issues = append(r.issues, *is)
		}
	}
}

func (r *Report) AddAll(issues []Issue) {
	r.issues = append(r.issues, issues...)
}

func (r *Report) Empty() bool {
	return len(r.issues) == 0
}

// Err devuelve nil si no hubo issues, o *Error con todos en orden.
func (r *Report) Err() error {
	if len(r.issues) == 0 {
		return nil
	}
	out := make([]Issue, len(r.issues))
	copy(out, r.issues)
	return &Error{Issues: out}
}
