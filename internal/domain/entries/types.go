package entries

// EntryType es el discriminante del campo "type".
type EntryType string

const (
	EntryTypeHospital               EntryType = "Hospital"
	EntryTypeOccupationalHealthcare EntryType = "OccupationalHealthcare"
	EntryTypeHealthCheck            EntryType = "HealthCheck"
)

// Types lista los tipos conocidos, en orden estable.
func Types() []EntryType {
	return []EntryType{
		EntryTypeHospital,
		EntryTypeOccupationalHealthcare,
		EntryTypeHealthCheck,
	}
}

// HealthCheckRating va de 0 (sano) a 3 (riesgo crítico).
type HealthCheckRating int

const (
	RatingHealthy HealthCheckRating = iota
	RatingLowRisk
	RatingHighRisk
	RatingCriticalRisk
)

func (r HealthCheckRating) String() string {
	switch r {
	case RatingHealthy:
		return "Healthy"
	case RatingLowRisk:
		return "LowRisk"
	case RatingHighRisk:
		return "HighRisk"
	case RatingCriticalRisk:
		return "CriticalRisk"
	default:
		return "Unknown"
	}
}
