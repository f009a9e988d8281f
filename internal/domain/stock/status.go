// Package stock clasificación pura del estado de inventario de un producto.
package stock

// Status nivel de stock de un producto respecto a su punto de reorden.
type Status string

const (
	StatusCritical Status = "Critical"
	StatusLowStock Status = "Low Stock"
	StatusInStock  Status = "In Stock"
)

// BorderlineBand ancho fijo de la banda "Low Stock" por encima del punto de reorden.
const BorderlineBand = 5

// Classify clasifica (quantity, reorderLevel) en un nivel de stock:
//
//	quantity <= reorderLevel                        -> Critical
//	reorderLevel < quantity <= reorderLevel + 5     -> Low Stock
//	en otro caso                                    -> In Stock
//
// Es una función pura; se usa tanto en el disparo de alertas post-venta como
// en los reportes de inventario.
func Classify(quantity, reorderLevel int) Status {
	switch {
	case quantity <= reorderLevel:
		return StatusCritical
	case quantity <= reorderLevel+BorderlineBand:
		return StatusLowStock
	default:
		return StatusInStock
	}
}
