package inventory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockroom-api/internal/application/dto"
	"github.com/jhoicas/stockroom-api/internal/domain"
	"github.com/jhoicas/stockroom-api/internal/domain/entity"
	"github.com/jhoicas/stockroom-api/internal/domain/repository"
)

const testUserID = "00000000-0000-0000-0000-000000000001"

type ledgerFixture struct {
	products *memProductRepo
	logs     *memLogRepo
	sender   *memSender
	barcodes *memBarcodeWriter
	cooldown *CooldownMap
	ledger   *StockLedger
}

func newLedgerFixture(t *testing.T, seed ...*entity.Product) *ledgerFixture {
	t.Helper()
	f := &ledgerFixture{
		products: newMemProductRepo(seed...),
		logs:     &memLogRepo{avg: 1.0},
		sender:   &memSender{},
		barcodes: newMemBarcodeWriter(),
	}
	f.cooldown = NewCooldownMap(time.Hour)
	users := &memUserRepo{admins: []string{"admin@stockroom.local"}}
	notifier := NewLowStockNotifier(f.logs, users, f.sender, f.cooldown, 5, testLogger())
	tx := &memTxRunner{products: f.products, logs: f.logs}
	f.ledger = NewStockLedger(tx, f.products, notifier, f.barcodes, testLogger())
	return f
}

func seedProduct() *entity.Product {
	return &entity.Product{
		SKU:          "SKU-100",
		Name:         "Guantes de nitrilo",
		Brand:        "SafeHands",
		Category:     "Seguridad",
		Quantity:     50,
		ReorderLevel: 10,
		Barcode:      "INV-SKU-100",
	}
}

// ─── ApplyMutation ───────────────────────────────────────────────────────────

func TestApplyMutation_VentaRestaYRegistraLog(t *testing.T) {
	f := newLedgerFixture(t, seedProduct())

	p, err := f.ledger.ApplyMutation(context.Background(), repository.KeySKU, "SKU-100", entity.ActionSale, 8, testUserID)
	require.NoError(t, err)
	assert.Equal(t, 42, p.Quantity)

	require.Len(t, f.logs.entries, 1, "cada mutación deja exactamente una entrada")
	entry := f.logs.entries[0]
	assert.Equal(t, "SKU-100", entry.SKU)
	require.NotNil(t, entry.Action)
	assert.Equal(t, entity.ActionSale, *entry.Action)
	require.NotNil(t, entry.Amount)
	assert.Equal(t, 8, *entry.Amount, "el log guarda la magnitud, no el delta")
	assert.Equal(t, testUserID, entry.UserID)
}

func TestApplyMutation_RestockYReturnSuman(t *testing.T) {
	f := newLedgerFixture(t, seedProduct())

	p, err := f.ledger.ApplyMutation(context.Background(), repository.KeySKU, "SKU-100", entity.ActionRestock, 20, testUserID)
	require.NoError(t, err)
	assert.Equal(t, 70, p.Quantity)

	p, err = f.ledger.ApplyMutation(context.Background(), repository.KeySKU, "SKU-100", entity.ActionReturn, 5, testUserID)
	require.NoError(t, err)
	assert.Equal(t, 75, p.Quantity)

	assert.Len(t, f.logs.entries, 2)
}

func TestApplyMutation_PorBarcode(t *testing.T) {
	f := newLedgerFixture(t, seedProduct())

	p, err := f.ledger.ApplyMutation(context.Background(), repository.KeyBarcode, "INV-SKU-100", entity.ActionSale, 1, testUserID)
	require.NoError(t, err)
	assert.Equal(t, "SKU-100", p.SKU)
	assert.Equal(t, 49, p.Quantity)
}

func TestApplyMutation_AccionDesconocida(t *testing.T) {
	f := newLedgerFixture(t, seedProduct())

	_, err := f.ledger.ApplyMutation(context.Background(), repository.KeySKU, "SKU-100", "transfer", 5, testUserID)
	assert.ErrorIs(t, err, domain.ErrInvalidAction)
	assert.Empty(t, f.logs.entries, "una mutación rechazada no deja rastro en el historial")
}

func TestApplyMutation_CantidadNoPositiva(t *testing.T) {
	f := newLedgerFixture(t, seedProduct())

	_, err := f.ledger.ApplyMutation(context.Background(), repository.KeySKU, "SKU-100", entity.ActionSale, 0, testUserID)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.ledger.ApplyMutation(context.Background(), repository.KeySKU, "SKU-100", entity.ActionSale, -3, testUserID)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, f.logs.entries)
}

func TestApplyMutation_ProductoInexistente(t *testing.T) {
	f := newLedgerFixture(t, seedProduct())

	_, err := f.ledger.ApplyMutation(context.Background(), repository.KeySKU, "SKU-NADA", entity.ActionSale, 1, testUserID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, f.logs.entries)
}

func TestApplyMutation_VentaMayorAlStockSeRechaza(t *testing.T) {
	f := newLedgerFixture(t, seedProduct())

	_, err := f.ledger.ApplyMutation(context.Background(), repository.KeySKU, "SKU-100", entity.ActionSale, 51, testUserID)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	current, _ := f.products.Get(repository.KeySKU, "SKU-100")
	assert.Equal(t, 50, current.Quantity, "la cantidad no cambia cuando la venta se rechaza")
	assert.Empty(t, f.logs.entries)
}

func TestApplyMutation_VentaQueVaciaElStockEsValida(t *testing.T) {
	f := newLedgerFixture(t, seedProduct())

	p, err := f.ledger.ApplyMutation(context.Background(), repository.KeySKU, "SKU-100", entity.ActionSale, 50, testUserID)
	require.NoError(t, err)
	assert.Equal(t, 0, p.Quantity, "vender exactamente el stock disponible deja cero, no error")
}

func TestApplyMutation_VentaCriticaDisparaAlerta(t *testing.T) {
	f := newLedgerFixture(t, seedProduct())

	// 50 -> 9, por debajo del reorder level 10.
	_, err := f.ledger.ApplyMutation(context.Background(), repository.KeySKU, "SKU-100", entity.ActionSale, 41, testUserID)
	require.NoError(t, err)
	assert.Len(t, f.sender.sent, 1, "la venta que deja nivel Critical alerta a los admin")
}

func TestApplyMutation_RestockCriticoNoAlerta(t *testing.T) {
	p := seedProduct()
	p.Quantity = 2 // ya crítico
	f := newLedgerFixture(t, p)

	_, err := f.ledger.ApplyMutation(context.Background(), repository.KeySKU, "SKU-100", entity.ActionRestock, 1, testUserID)
	require.NoError(t, err)
	assert.Empty(t, f.sender.sent, "solo las ventas evalúan la alerta")
}

// ─── AddProduct ──────────────────────────────────────────────────────────────

func TestAddProduct_CreaConBarcodeDerivadoYLogDeCreacion(t *testing.T) {
	f := newLedgerFixture(t)

	expiry := "2026-12-31"
	p, err := f.ledger.AddProduct(context.Background(), dto.CreateProductRequest{
		SKU:          "SKU-200",
		Name:         "Cinta aislante",
		Brand:        "3M",
		Category:     "Eléctrico",
		Quantity:     30,
		ReorderLevel: 5,
		Expiry:       &expiry,
	}, testUserID)
	require.NoError(t, err)

	assert.Equal(t, "INV-SKU-200", p.Barcode, "el barcode se deriva del SKU en el servidor")
	require.NotNil(t, p.Expiry)
	assert.Equal(t, "2026-12-31", p.Expiry.Format(dto.DateLayout))

	require.Len(t, f.logs.entries, 1)
	entry := f.logs.entries[0]
	assert.Nil(t, entry.Action, "la entrada de creación no lleva acción")
	require.NotNil(t, entry.Amount)
	assert.Equal(t, 30, *entry.Amount, "la entrada de creación registra la cantidad inicial")

	assert.Equal(t, "INV-SKU-200", f.barcodes.written["SKU-200"], "se genera la imagen Code128")
}

func TestAddProduct_SKUDuplicado(t *testing.T) {
	f := newLedgerFixture(t, seedProduct())

	_, err := f.ledger.AddProduct(context.Background(), dto.CreateProductRequest{
		SKU: "SKU-100", Name: "Otro", Quantity: 1,
	}, testUserID)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Empty(t, f.logs.entries)
}

func TestAddProduct_ExpiryInvalida(t *testing.T) {
	f := newLedgerFixture(t)

	bad := "31/12/2026"
	_, err := f.ledger.AddProduct(context.Background(), dto.CreateProductRequest{
		SKU: "SKU-201", Name: "Cinta", Quantity: 1, Expiry: &bad,
	}, testUserID)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAddProduct_FalloDeImagenNoRevierteLaCreacion(t *testing.T) {
	f := newLedgerFixture(t)
	f.barcodes.writeErr = assert.AnError

	p, err := f.ledger.AddProduct(context.Background(), dto.CreateProductRequest{
		SKU: "SKU-202", Name: "Brocas", Quantity: 10,
	}, testUserID)
	require.NoError(t, err, "la imagen es best-effort")
	assert.NotNil(t, p)
	assert.Len(t, f.logs.entries, 1)
}

// ─── AdminUpdate ─────────────────────────────────────────────────────────────

func TestAdminUpdate_ActualizaCamposYAplicaDelta(t *testing.T) {
	f := newLedgerFixture(t, seedProduct())

	p, err := f.ledger.AdminUpdate(context.Background(), "SKU-100", dto.UpdateProductRequest{
		Name:         "Guantes de nitrilo XL",
		Brand:        "SafeHands",
		Category:     "Seguridad",
		ReorderLevel: 15,
		Action:       entity.ActionRestock,
		Amount:       10,
	}, testUserID)
	require.NoError(t, err)

	assert.Equal(t, "Guantes de nitrilo XL", p.Name)
	assert.Equal(t, 15, p.ReorderLevel)
	assert.Equal(t, 60, p.Quantity)

	require.Len(t, f.logs.entries, 1)
	require.NotNil(t, f.logs.entries[0].Action)
	assert.Equal(t, entity.ActionRestock, *f.logs.entries[0].Action)
}

func TestAdminUpdate_VentaMayorAlStock(t *testing.T) {
	f := newLedgerFixture(t, seedProduct())

	_, err := f.ledger.AdminUpdate(context.Background(), "SKU-100", dto.UpdateProductRequest{
		Name:   "Guantes",
		Action: entity.ActionSale,
		Amount: 999,
	}, testUserID)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Empty(t, f.logs.entries)
}

// ─── DeleteProduct ───────────────────────────────────────────────────────────

func TestDeleteProduct_EliminaYRegistraEntradaTerminal(t *testing.T) {
	f := newLedgerFixture(t, seedProduct())

	err := f.ledger.DeleteProduct(context.Background(), "SKU-100", testUserID)
	require.NoError(t, err)

	gone, _ := f.products.Get(repository.KeySKU, "SKU-100")
	assert.Nil(t, gone)

	require.Len(t, f.logs.entries, 1)
	entry := f.logs.entries[0]
	require.NotNil(t, entry.Action)
	assert.Equal(t, entity.ActionDeleted, *entry.Action)
	assert.Nil(t, entry.Amount, "la entrada de borrado no lleva cantidad")
}

func TestDeleteProduct_SKUDesconocido(t *testing.T) {
	f := newLedgerFixture(t, seedProduct())

	err := f.ledger.DeleteProduct(context.Background(), "SKU-NADA", testUserID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, f.logs.entries)
}
