package repository

import (
	"time"

	"github.com/jhoicas/stockroom-api/internal/domain/entity"
)

// ProductKey clave de búsqueda de un producto. El flujo de escaneo usa el
// código de barras; el resto de la API usa el SKU. Un solo camino de código
// de mutación se parametriza con esta clave.
type ProductKey int

const (
	KeySKU ProductKey = iota
	KeyBarcode
)

// Column devuelve la columna SQL asociada a la clave.
func (k ProductKey) Column() string {
	if k == KeyBarcode {
		return "barcode"
	}
	return "sku"
}

// ProductFilter filtros opcionales del listado de productos y de los exports.
// Los campos string son match de subcadena case-insensitive (ILIKE).
type ProductFilter struct {
	SKU        string
	Name       string
	Category   string
	StockAbove *int // quantity > StockAbove
	StockBelow *int // quantity < StockBelow
	LowStock   bool // quantity <= reorder_level + banda borderline
}

// ProductUpdate campos descriptivos modificables en la edición administrativa.
// La cantidad no aparece aquí: solo cambia vía delta del StockLedger.
type ProductUpdate struct {
	Name         string
	Brand        string
	Category     string
	ReorderLevel int
	Expiry       *time.Time
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	Get(key ProductKey, value string) (*entity.Product, error)
	List(filter ProductFilter) ([]*entity.Product, error)
	// AdjustQuantity aplica quantity = quantity + delta en un solo UPDATE
	// condicional (con delta negativo exige quantity + delta >= 0) y devuelve
	// el producto actualizado, o nil si ninguna fila cumplió la condición.
	AdjustQuantity(key ProductKey, value string, delta int) (*entity.Product, error)
	// UpdateWithDelta actualiza los campos descriptivos y aplica el delta de
	// cantidad en la misma sentencia, con la misma condición de stock.
	UpdateWithDelta(sku string, upd ProductUpdate, delta int) (*entity.Product, error)
	// Delete elimina por SKU; devuelve false si no existía.
	Delete(sku string) (bool, error)
}
