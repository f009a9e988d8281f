package dto

import "time"

// LogResponse entrada del historial de movimientos, con el username resuelto.
// Action es null en la entrada de creación; Amount es null en la de borrado.
type LogResponse struct {
	ID        int64     `json:"id"`
	SKU       string    `json:"sku"`
	Action    *string   `json:"action"`
	Amount    *int      `json:"amount"`
	User      string    `json:"user"`
	CreatedAt time.Time `json:"created_at"`
}
