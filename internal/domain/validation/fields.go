package validation

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/araddon/dateparse"
)

const msgRequired = "Required"

// Field es un valor crudo (decodificado de JSON) junto con su ruta.
// Present=false significa que la key no vino en el payload.
type Field struct {
	Path    Path
	Value   any
	Present bool
}

// Lookup busca key en obj. obj nil se trata como objeto vacío.
func Lookup(obj map[string]any, base Path, key string) Field {
	v, ok := obj[key]
	return Field{Path: base.Child(key), Value: v, Present: ok}
}

// NonEmptyString exige un string de largo >= 1 (sin trim).
func NonEmptyString(f Field, msg string) (string, *Issue) {
	if !f.Present {
		return "", required(f)
	}
	s, ok := f.Value.(string)
	if !ok {
		return "", invalidType(f, "string")
	}
	if len(s) == 0 {
		return "", &Issue{Path: f.Path, Kind: KindRequiredField, Message: msg}
	}
	return s, nil
}

// ParsableDate acepta cualquier string que dateparse.ParseAny entienda.
// Es permisivo a propósito: "2023-10" o "Oct 2, 2023" también pasan, y
// también "2023-10-01 junk", "1/", "3.14" o "1999-". "2023-02-30" no.
func ParsableDate(f Field, msg string) (string, *Issue) {
	if !f.Present {
		return "", required(f)
	}
	s, ok := f.Value.(string)
	if !ok {
		return "", invalidType(f, "string")
	}
	if !IsDate(s) {
		return "", &Issue{Path: f.Path, Kind: KindInvalidDate, Message: msg}
	}
	return s, nil
}

// IsDate reporta si s se puede interpretar como fecha.
func IsDate(s string) bool {
	if s == "" {
		return false
	}
	_, err := dateparse.ParseAny(s)
	return err == nil
}

// BoundedInt exige un número entero en [lo, hi]. Igual que los clientes
// existentes, un número fuera de rango y con decimales reporta ambos issues.
func BoundedInt(f Field, lo, hi int) (int, []Issue) {
	if !f.Present {
		return 0, []Issue{*required(f)}
	}
	n, ok := number(f.Value)
	if !ok {
		return 0, []Issue{*invalidType(f, "number")}
	}

	var issues []Issue
	if n != math.Trunc(n) {
		issues = append(issues, Issue{Path: f.Path, Kind: KindOutOfRange, Message: "Expected integer, received float"})
	}
	if n < float64(lo) {
		issues = append(issues, Issue{Path: f.Path, Kind: KindOutOfRange, Message: fmt.Sprintf("Number must be greater than or equal to %d", lo)})
	}
	if n > float64(hi) {
		issues = append(issues, Issue{Path: f.Path, Kind: KindOutOfRange, Message: fmt.Sprintf("Number must be less than or equal to %d", hi)})
	}
	if len(issues) > 0 {
		return 0, issues
	}
	return int(n), nil
}

// EnumMember exige que el valor sea uno de allowed. Cualquier falla
// (ausente, tipo incorrecto, valor desconocido) reporta msg.
func EnumMember[T ~string](f Field, allowed []T, msg string) (T, *Issue) {
	var zero T
	s, ok := f.Value.(string)
	if !f.Present || !ok {
		return zero, &Issue{Path: f.Path, Kind: KindInvalidEnum, Message: msg}
	}
	for _, a := range allowed {
		if string(a) == s {
			return a, nil
		}
	}
	return zero, &Issue{Path: f.Path, Kind: KindInvalidEnum, Message: msg}
}

// Object exige un objeto JSON anidado.
func Object(f Field) (map[string]any, *Issue) {
	if !f.Present {
		return nil, required(f)
	}
	m, ok := f.Value.(map[string]any)
	if !ok {
		return nil, invalidType(f, "object")
	}
	return m, nil
}

// StringSlice valida que cada elemento sea string. Ausente o no-array
// devuelve slice vacío sin error (default permisivo).
func StringSlice(f Field) ([]string, []Issue) {
	out := []string{}
	if !f.Present {
		return out, nil
	}
	arr, ok := f.Value.([]any)
	if !ok {
		return out, nil
	}

	var issues []Issue
	for i, v := range arr {
		s, ok := v.(string)
		if !ok {
			issues = append(issues, *invalidType(Field{Path: f.Path.Child(strconv.Itoa(i)), Value: v, Present: true}, "string"))
			continue
		}
		out = append(out, s)
	}
	if len(issues) > 0 {
		return []string{}, issues
	}
	return out, nil
}

func required(f Field) *Issue {
	return &Issue{Path: f.Path, Kind: KindRequiredField, Message: msgRequired}
}

func invalidType(f Field, expected string) *Issue {
	return &Issue{
		Path:    f.Path,
		Kind:    KindInvalidType,
		Message: fmt.Sprintf("Expected %s, received %s", expected, TypeName(f.Value)),
	}
}

// TypeName nombra el tipo JSON de un valor decodificado.
func TypeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, float32, int, int64, json.Number:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
