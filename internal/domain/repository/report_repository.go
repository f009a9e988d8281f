package repository

import (
	"context"
	"time"

	"github.com/jhoicas/stockroom-api/internal/domain/entity"
)

// CategoryCount productos por categoría.
type CategoryCount struct {
	Category string
	Count    int
}

// DailyCount movimientos registrados por día.
type DailyCount struct {
	Day   time.Time
	Total int
}

// TopProduct unidades vendidas acumuladas de un SKU.
type TopProduct struct {
	SKU       string
	Name      string
	TotalSold int
}

// ReportRepository define las consultas de solo lectura para los reportes.
// Las implementaciones no modifican datos.
type ReportRepository interface {
	// CategoryDistribution cuenta productos agrupados por categoría.
	CategoryDistribution(ctx context.Context) ([]CategoryCount, error)
	// LowQuantity devuelve los productos con quantity <= reorder_level + banda
	// borderline; el nivel de stock por fila lo calcula el clasificador.
	LowQuantity(ctx context.Context) ([]*entity.Product, error)
	// DailyActivity cuenta entradas del historial por día en los últimos `days` días.
	DailyActivity(ctx context.Context, days int) ([]DailyCount, error)
	// TopSelling suma las unidades vendidas (action = sale) por producto,
	// descendente, hasta `limit` filas.
	TopSelling(ctx context.Context, limit int) ([]TopProduct, error)
}
