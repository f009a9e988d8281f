package repository

import (
	"time"

	"github.com/jhoicas/stockroom-api/internal/domain/entity"
)

// LogFilter filtros opcionales de consulta del historial. SKU, Action y User
// son match de subcadena case-insensitive; From/To acotan created_at con
// límites inclusivos.
type LogFilter struct {
	SKU    string
	Action string
	User   string
	From   *time.Time
	To     *time.Time
}

// InventoryLogRepository define el puerto de persistencia para el historial
// append-only de movimientos (DIP).
type InventoryLogRepository interface {
	// Append inserta una entrada. Nunca falla en silencio: el error se
	// propaga y el StockLedger lo trata como fatal para toda la mutación.
	Append(log *entity.InventoryLog) error
	// Query devuelve las entradas más recientes primero, cada una con el
	// username del usuario que ejecutó la acción.
	Query(filter LogFilter) ([]*entity.InventoryLog, error)
	// Delete borra una entrada por id (operación administrativa);
	// devuelve false si el id no existe.
	Delete(id int64) (bool, error)
	// AvgDailySales promedio diario de unidades vendidas de un SKU en los
	// últimos 30 días: SUM(amount) / días transcurridos entre la primera y
	// la última venta de la ventana (divisor mínimo 1). Devuelve 0 si no
	// hubo ventas.
	AvgDailySales(sku string) (float64, error)
}
