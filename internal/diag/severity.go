package diag

// Severity ranks a diagnostic's weight in the driven pipeline: errors
// fail their stage, warnings (soft type-check findings) do not.
type Severity uint8

const (
	// SevInfo is for informational diagnostics.
	SevInfo Severity = iota
	// SevWarning marks findings the host kept checking past.
	SevWarning
	// SevError marks findings that fail the reporting stage.
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}
