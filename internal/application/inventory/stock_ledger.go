package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/stockroom-api/internal/application/dto"
	"github.com/jhoicas/stockroom-api/internal/domain"
	"github.com/jhoicas/stockroom-api/internal/domain/entity"
	"github.com/jhoicas/stockroom-api/internal/domain/repository"
	"github.com/jhoicas/stockroom-api/pkg/logger"
)

// StockLedger aplica cambios de cantidad a un producto como una sola operación
// lógica: el UPDATE de quantity y el INSERT en inventory_logs se confirman o
// descartan juntos (TxRunner). Una venta que deja el producto en nivel
// Critical dispara el notificador; restock y return nunca lo hacen porque
// solo aumentan stock.
//
// Política de cantidad: una venta mayor al stock disponible se rechaza con
// ErrInsufficientStock (el UPDATE condicional no matchea ninguna fila);
// quantity nunca queda negativo.
type StockLedger struct {
	txRunner TxRunner
	products repository.ProductRepository
	notifier *LowStockNotifier
	barcodes BarcodeWriter
	log      *logger.Logger
}

// NewStockLedger construye el ledger.
func NewStockLedger(
	txRunner TxRunner,
	products repository.ProductRepository,
	notifier *LowStockNotifier,
	barcodes BarcodeWriter,
	log *logger.Logger,
) *StockLedger {
	return &StockLedger{
		txRunner: txRunner,
		products: products,
		notifier: notifier,
		barcodes: barcodes,
		log:      log,
	}
}

// ApplyMutation aplica una mutación de cantidad (sale resta, restock/return
// suman) buscando el producto por SKU o por barcode según key. Devuelve el
// producto actualizado.
func (l *StockLedger) ApplyMutation(
	ctx context.Context,
	key repository.ProductKey,
	value string,
	action string,
	amount int,
	userID string,
) (*entity.Product, error) {
	if !entity.MutationAction(action) {
		return nil, domain.ErrInvalidAction
	}
	if amount <= 0 {
		return nil, domain.ErrInvalidInput
	}
	delta := amount
	if action == entity.ActionSale {
		delta = -amount
	}

	var updated *entity.Product
	err := l.txRunner.Run(ctx, func(
		products repository.ProductRepository,
		logs repository.InventoryLogRepository,
	) error {
		p, err := products.AdjustQuantity(key, value, delta)
		if err != nil {
			return err
		}
		if p == nil {
			return l.classifyMiss(products, key, value)
		}
		act, amt := action, amount
		if err := logs.Append(&entity.InventoryLog{
			SKU:    p.SKU,
			Action: &act,
			Amount: &amt,
			UserID: userID,
		}); err != nil {
			return err
		}
		updated = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	if action == entity.ActionSale {
		l.notifier.MaybeAlert(updated)
	}
	return updated, nil
}

// AdminUpdate edita los campos descriptivos y aplica un delta de cantidad en
// una sola operación atómica, con el mismo disparo de alerta que ApplyMutation.
func (l *StockLedger) AdminUpdate(
	ctx context.Context,
	sku string,
	in dto.UpdateProductRequest,
	userID string,
) (*entity.Product, error) {
	if !entity.MutationAction(in.Action) {
		return nil, domain.ErrInvalidAction
	}
	if in.Amount <= 0 || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	expiry, err := parseExpiry(in.Expiry)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	delta := in.Amount
	if in.Action == entity.ActionSale {
		delta = -in.Amount
	}
	upd := repository.ProductUpdate{
		Name:         in.Name,
		Brand:        in.Brand,
		Category:     in.Category,
		ReorderLevel: in.ReorderLevel,
		Expiry:       expiry,
	}

	var updated *entity.Product
	err = l.txRunner.Run(ctx, func(
		products repository.ProductRepository,
		logs repository.InventoryLogRepository,
	) error {
		p, err := products.UpdateWithDelta(sku, upd, delta)
		if err != nil {
			return err
		}
		if p == nil {
			return l.classifyMiss(products, repository.KeySKU, sku)
		}
		act, amt := in.Action, in.Amount
		if err := logs.Append(&entity.InventoryLog{
			SKU:    p.SKU,
			Action: &act,
			Amount: &amt,
			UserID: userID,
		}); err != nil {
			return err
		}
		updated = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	if in.Action == entity.ActionSale {
		l.notifier.MaybeAlert(updated)
	}
	return updated, nil
}

// AddProduct inserta un producto nuevo con barcode derivado del SKU y registra
// la entrada de creación (action nula, amount = cantidad inicial) en la misma
// transacción. SKU duplicado devuelve ErrDuplicate sin escribir nada.
func (l *StockLedger) AddProduct(
	ctx context.Context,
	in dto.CreateProductRequest,
	userID string,
) (*entity.Product, error) {
	if in.SKU == "" || in.Name == "" || in.Quantity < 0 || in.ReorderLevel < 0 {
		return nil, domain.ErrInvalidInput
	}
	expiry, err := parseExpiry(in.Expiry)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	product := &entity.Product{
		SKU:          in.SKU,
		Name:         in.Name,
		Brand:        in.Brand,
		Category:     in.Category,
		Quantity:     in.Quantity,
		ReorderLevel: in.ReorderLevel,
		Expiry:       expiry,
		Barcode:      entity.DeriveBarcode(in.SKU),
	}

	err = l.txRunner.Run(ctx, func(
		products repository.ProductRepository,
		logs repository.InventoryLogRepository,
	) error {
		if err := products.Create(product); err != nil {
			return err
		}
		amt := in.Quantity
		return logs.Append(&entity.InventoryLog{
			SKU:    product.SKU,
			Action: nil, // creación
			Amount: &amt,
			UserID: userID,
		})
	})
	if err != nil {
		return nil, err
	}

	// La imagen Code128 es best-effort: su fallo no revierte la creación.
	if err := l.barcodes.Write(product.SKU, product.Barcode); err != nil {
		l.log.Error().Err(err).Str("sku", product.SKU).Msg("generación de imagen de barcode")
	}
	return product, nil
}

// DeleteProduct elimina el producto y registra la entrada terminal "deleted"
// (amount nula) en la misma transacción. SKU desconocido devuelve ErrNotFound
// sin escribir ninguna entrada.
func (l *StockLedger) DeleteProduct(ctx context.Context, sku, userID string) error {
	return l.txRunner.Run(ctx, func(
		products repository.ProductRepository,
		logs repository.InventoryLogRepository,
	) error {
		ok, err := products.Delete(sku)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrNotFound
		}
		act := entity.ActionDeleted
		return logs.Append(&entity.InventoryLog{
			SKU:    sku,
			Action: &act,
			Amount: nil,
			UserID: userID,
		})
	})
}

// classifyMiss distingue por qué el UPDATE condicional no matcheó: producto
// inexistente (ErrNotFound) o venta mayor al stock (ErrInsufficientStock).
func (l *StockLedger) classifyMiss(
	products repository.ProductRepository,
	key repository.ProductKey,
	value string,
) error {
	existing, err := products.Get(key, value)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	return domain.ErrInsufficientStock
}

func parseExpiry(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(dto.DateLayout, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
