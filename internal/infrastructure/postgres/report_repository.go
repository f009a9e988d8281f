package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/stockroom-api/internal/domain/entity"
	"github.com/jhoicas/stockroom-api/internal/domain/repository"
	"github.com/jhoicas/stockroom-api/internal/domain/stock"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para los reportes del dashboard.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// CategoryDistribution cuenta productos agrupados por categoría.
func (r *ReportRepo) CategoryDistribution(ctx context.Context) ([]repository.CategoryCount, error) {
	const query = `
		SELECT category, COUNT(*) AS count
		FROM products
		GROUP BY category
		ORDER BY count DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("reports.CategoryDistribution: %w", err)
	}
	defer rows.Close()
	var results []repository.CategoryCount
	for rows.Next() {
		var row repository.CategoryCount
		if err := rows.Scan(&row.Category, &row.Count); err != nil {
			return nil, fmt.Errorf("scan category count: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// LowQuantity productos dentro de la banda de stock bajo/borderline; el nivel
// por fila lo calcula el clasificador en la capa de aplicación.
func (r *ReportRepo) LowQuantity(ctx context.Context) ([]*entity.Product, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM products
		WHERE quantity <= reorder_level + %d
		ORDER BY quantity ASC`, productColumns, stock.BorderlineBand)
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("reports.LowQuantity: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.SKU, &p.Name, &p.Brand, &p.Category, &p.Quantity,
			&p.ReorderLevel, &p.Expiry, &p.Barcode); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// DailyActivity cuenta entradas del historial por día en los últimos `days` días.
// El intervalo va parametrizado con make_interval, no concatenado.
func (r *ReportRepo) DailyActivity(ctx context.Context, days int) ([]repository.DailyCount, error) {
	const query = `
		SELECT DATE(created_at) AS day, COUNT(*) AS total_logs
		FROM inventory_logs
		WHERE created_at >= NOW() - make_interval(days => $1)
		GROUP BY day
		ORDER BY day ASC`
	rows, err := r.pool.Query(ctx, query, days)
	if err != nil {
		return nil, fmt.Errorf("reports.DailyActivity: %w", err)
	}
	defer rows.Close()
	var results []repository.DailyCount
	for rows.Next() {
		var row repository.DailyCount
		if err := rows.Scan(&row.Day, &row.Total); err != nil {
			return nil, fmt.Errorf("scan daily count: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// TopSelling suma las unidades vendidas por producto, descendente.
func (r *ReportRepo) TopSelling(ctx context.Context, limit int) ([]repository.TopProduct, error) {
	const query = `
		SELECT p.sku, p.name, SUM(il.amount) AS total_quantity_sold
		FROM products p
		JOIN inventory_logs il ON il.sku = p.sku
		WHERE il.action = 'sale'
		GROUP BY p.sku, p.name
		ORDER BY total_quantity_sold DESC
		LIMIT $1`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("reports.TopSelling: %w", err)
	}
	defer rows.Close()
	var results []repository.TopProduct
	for rows.Next() {
		var row repository.TopProduct
		if err := rows.Scan(&row.SKU, &row.Name, &row.TotalSold); err != nil {
			return nil, fmt.Errorf("scan top product: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
