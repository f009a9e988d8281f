package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stockroom-api/internal/domain"
	"github.com/jhoicas/stockroom-api/internal/domain/entity"
	"github.com/jhoicas/stockroom-api/internal/domain/repository"
	"github.com/jhoicas/stockroom-api/internal/domain/stock"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = "sku, name, brand, category, quantity, reorder_level, expiry, barcode"

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto. SKU duplicado devuelve ErrDuplicate.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (sku, name, brand, category, quantity, reorder_level, expiry, barcode)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		product.SKU, product.Name, product.Brand, product.Category,
		product.Quantity, product.ReorderLevel, product.Expiry, product.Barcode,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// Get obtiene un producto por SKU o por barcode según la clave.
func (r *ProductRepo) Get(key repository.ProductKey, value string) (*entity.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE %s = $1`, productColumns, key.Column())
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, value).Scan(
		&p.SKU, &p.Name, &p.Brand, &p.Category, &p.Quantity, &p.ReorderLevel, &p.Expiry, &p.Barcode,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// List lista productos con filtros opcionales, ordenados por nombre.
// Cada filtro presente agrega una condición parametrizada; ningún valor del
// usuario se concatena al SQL.
func (r *ProductRepo) List(filter repository.ProductFilter) ([]*entity.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products`, productColumns)
	var conds []string
	var args []any

	addCond := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if filter.SKU != "" {
		addCond("sku ILIKE $%d", "%"+filter.SKU+"%")
	}
	if filter.Name != "" {
		addCond("name ILIKE $%d", "%"+filter.Name+"%")
	}
	if filter.Category != "" {
		addCond("category ILIKE $%d", "%"+filter.Category+"%")
	}
	if filter.StockAbove != nil {
		addCond("quantity > $%d", *filter.StockAbove)
	}
	if filter.StockBelow != nil {
		addCond("quantity < $%d", *filter.StockBelow)
	}
	if filter.LowStock {
		conds = append(conds, fmt.Sprintf("quantity <= reorder_level + %d", stock.BorderlineBand))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY name ASC"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
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

// AdjustQuantity aplica quantity = quantity + delta en un solo UPDATE
// condicional: con delta negativo la fila solo matchea si el stock alcanza,
// así quantity nunca queda negativo. Devuelve nil si ninguna fila matcheó
// (producto inexistente o stock insuficiente; el caller distingue).
func (r *ProductRepo) AdjustQuantity(key repository.ProductKey, value string, delta int) (*entity.Product, error) {
	query := fmt.Sprintf(`
		UPDATE products SET quantity = quantity + $1
		WHERE %s = $2 AND quantity + $1 >= 0
		RETURNING %s`, key.Column(), productColumns)
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, delta, value).Scan(
		&p.SKU, &p.Name, &p.Brand, &p.Category, &p.Quantity, &p.ReorderLevel, &p.Expiry, &p.Barcode,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("adjust quantity: %w", err)
	}
	return &p, nil
}

// UpdateWithDelta actualiza los campos descriptivos y aplica el delta de
// cantidad en la misma sentencia, con la misma condición de stock que
// AdjustQuantity.
func (r *ProductRepo) UpdateWithDelta(sku string, upd repository.ProductUpdate, delta int) (*entity.Product, error) {
	query := fmt.Sprintf(`
		UPDATE products
		SET name = $1, brand = $2, category = $3, reorder_level = $4, expiry = $5,
		    quantity = quantity + $6
		WHERE sku = $7 AND quantity + $6 >= 0
		RETURNING %s`, productColumns)
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query,
		upd.Name, upd.Brand, upd.Category, upd.ReorderLevel, upd.Expiry, delta, sku,
	).Scan(
		&p.SKU, &p.Name, &p.Brand, &p.Category, &p.Quantity, &p.ReorderLevel, &p.Expiry, &p.Barcode,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update product: %w", err)
	}
	return &p, nil
}

// Delete elimina un producto por SKU. Devuelve false si no existía.
func (r *ProductRepo) Delete(sku string) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE sku = $1`, sku)
	if err != nil {
		return false, fmt.Errorf("delete product: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
