package model

import "time"

// Brand is a customer going through the sampling-to-delivery workflow.
type Brand struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}

// Factory is a production site orders are assigned to.
type Factory struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}

// Product is a sellable item referenced by quote and order lines.
type Product struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}
