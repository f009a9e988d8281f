package entity

import "time"

// Acciones de mutación de stock. La creación de un producto se registra con
// Action nula y Amount igual a la cantidad inicial.
const (
	ActionSale    = "sale"
	ActionRestock = "restock"
	ActionReturn  = "return"
	ActionDeleted = "deleted"
)

// MutationAction indica si la acción es una de las tres mutaciones de cantidad.
func MutationAction(action string) bool {
	return action == ActionSale || action == ActionRestock || action == ActionReturn
}

// InventoryLog entrada inmutable del historial de movimientos. Se crea
// exactamente una por mutación, dentro de la misma transacción que el cambio
// de cantidad; nunca se actualiza (solo el borrado administrativo explícito).
type InventoryLog struct {
	ID        int64
	SKU       string
	Action    *string // nil = creación del producto
	Amount    *int    // nil en la entrada terminal "deleted"
	UserID    string
	CreatedAt time.Time

	// Username del usuario que ejecutó la acción; se resuelve con JOIN en
	// las consultas, no se persiste en la tabla de logs.
	Username string
}
