package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/stockroom-api/internal/domain/entity"
	"github.com/jhoicas/stockroom-api/internal/domain/repository"
)

var _ repository.InventoryLogRepository = (*InventoryLogRepo)(nil)

// InventoryLogRepo implementación del puerto InventoryLogRepository sobre
// PostgreSQL (usable con pool o tx). La tabla es append-only: no hay UPDATE.
type InventoryLogRepo struct {
	q Querier
}

// NewInventoryLogRepository construye el adaptador de persistencia del historial.
func NewInventoryLogRepository(q Querier) *InventoryLogRepo {
	return &InventoryLogRepo{q: q}
}

// Append inserta una entrada; created_at lo pone la DB.
func (r *InventoryLogRepo) Append(log *entity.InventoryLog) error {
	query := `
		INSERT INTO inventory_logs (sku, action, amount, user_id)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query, log.SKU, log.Action, log.Amount, log.UserID)
	if err != nil {
		return fmt.Errorf("insert inventory log: %w", err)
	}
	return nil
}

// Query devuelve el historial filtrado, más reciente primero, con el username
// del usuario resuelto vía JOIN. Cada filtro presente agrega una condición
// parametrizada; ningún valor del usuario se concatena al SQL.
func (r *InventoryLogRepo) Query(filter repository.LogFilter) ([]*entity.InventoryLog, error) {
	query := `
		SELECT il.id, il.sku, il.action, il.amount, il.user_id, il.created_at, u.username
		FROM inventory_logs il
		JOIN users u ON u.id = il.user_id`
	var conds []string
	var args []any

	addCond := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if filter.SKU != "" {
		addCond("il.sku ILIKE $%d", "%"+filter.SKU+"%")
	}
	if filter.Action != "" {
		addCond("il.action ILIKE $%d", "%"+filter.Action+"%")
	}
	if filter.User != "" {
		addCond("u.username ILIKE $%d", "%"+filter.User+"%")
	}
	if filter.From != nil {
		addCond("il.created_at >= $%d", *filter.From)
	}
	if filter.To != nil {
		addCond("il.created_at <= $%d", *filter.To)
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY il.created_at DESC"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("query inventory logs: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryLog
	for rows.Next() {
		var l entity.InventoryLog
		if err := rows.Scan(&l.ID, &l.SKU, &l.Action, &l.Amount, &l.UserID,
			&l.CreatedAt, &l.Username); err != nil {
			return nil, fmt.Errorf("scan inventory log: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// Delete borra una entrada por id. Devuelve false si no existía.
func (r *InventoryLogRepo) Delete(id int64) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM inventory_logs WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete inventory log: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// AvgDailySales promedio diario de unidades vendidas en los últimos 30 días:
// total vendido dividido por los días entre la primera y la última venta de
// la ventana (divisor mínimo 1). Cero si no hubo ventas.
func (r *InventoryLogRepo) AvgDailySales(sku string) (float64, error) {
	query := `
		SELECT COALESCE(
			SUM(amount) / GREATEST(DATE_PART('day', MAX(created_at) - MIN(created_at)), 1),
			0)
		FROM inventory_logs
		WHERE action = 'sale' AND sku = $1 AND created_at >= NOW() - INTERVAL '30 days'`
	var avg float64
	if err := r.q.QueryRow(context.Background(), query, sku).Scan(&avg); err != nil {
		return 0, fmt.Errorf("avg daily sales: %w", err)
	}
	return avg, nil
}
