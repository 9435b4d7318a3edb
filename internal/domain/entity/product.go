package entity

import (
	"time"
)

// Product represents one inventory item. Mutated in place by updates and
// removed by delete; there is no versioning or soft-delete.
type Product struct {
	ID          uint64    // Unique identifier, assigned by the store on creation.
	Name        string    // Product display name.
	Description string    // Optional description, defaults to empty.
	Price       float64   // Unit price. No numeric constraints are enforced.
	Stock       int       // Units in stock.
	CreatedAt   time.Time // Set once, server-side, at creation.
}
