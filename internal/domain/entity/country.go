package entity

// Country is externally managed reference data; the service only reads it.
type Country struct {
	ID   string
	Name string
	Code string // ISO-like code, e.g. "SA"
}
