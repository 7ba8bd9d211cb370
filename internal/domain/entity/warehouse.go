package entity

import "time"

// Warehouse is a storage site bound to exactly one country.
// Its stock count is derived from the stocks table at read time, never stored.
type Warehouse struct {
	ID        string
	Name      string
	Location  string
	CountryID string
	CreatedAt time.Time
	UpdatedAt time.Time
}
