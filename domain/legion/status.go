package legion

// Status labels a record by whether its score shows actual participation.
type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

// Classify is total: every score maps to exactly one status.
func Classify(score int) Status {
	if score > 0 {
		return StatusActive
	}
	return StatusInactive
}
