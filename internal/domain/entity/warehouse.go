package entity

import "time"

// Warehouse representa una bodega; es el destino de los traslados.
type Warehouse struct {
	ID        string
	Name      string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
