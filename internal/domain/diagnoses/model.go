package diagnoses

// Diagnosis es un código del catálogo de referencia (solo lectura).
type Diagnosis struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Latin string `json:"latin,omitempty"`
}
