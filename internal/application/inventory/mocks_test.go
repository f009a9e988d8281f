package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/stockroom-api/internal/domain"
	"github.com/jhoicas/stockroom-api/internal/domain/entity"
	"github.com/jhoicas/stockroom-api/internal/domain/repository"
	"github.com/jhoicas/stockroom-api/pkg/logger"
)

// Dobles en memoria de los puertos del StockLedger y del notificador.

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "development", Level: "error"})
}

// ─── ProductRepository ───────────────────────────────────────────────────────

type memProductRepo struct {
	products map[string]*entity.Product // por SKU
}

var _ repository.ProductRepository = (*memProductRepo)(nil)

func newMemProductRepo(products ...*entity.Product) *memProductRepo {
	r := &memProductRepo{products: make(map[string]*entity.Product)}
	for _, p := range products {
		cp := *p
		r.products[p.SKU] = &cp
	}
	return r
}

func (r *memProductRepo) find(key repository.ProductKey, value string) *entity.Product {
	if key == repository.KeySKU {
		return r.products[value]
	}
	for _, p := range r.products {
		if p.Barcode == value {
			return p
		}
	}
	return nil
}

func (r *memProductRepo) Create(product *entity.Product) error {
	if _, ok := r.products[product.SKU]; ok {
		return domain.ErrDuplicate
	}
	cp := *product
	r.products[product.SKU] = &cp
	return nil
}

func (r *memProductRepo) Get(key repository.ProductKey, value string) (*entity.Product, error) {
	p := r.find(key, value)
	if p == nil {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) List(filter repository.ProductFilter) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		if filter.SKU != "" && !strings.Contains(strings.ToLower(p.SKU), strings.ToLower(filter.SKU)) {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

// AdjustQuantity replica el contrato del UPDATE condicional: nil si el
// producto no existe o si el delta dejaría la cantidad negativa.
func (r *memProductRepo) AdjustQuantity(key repository.ProductKey, value string, delta int) (*entity.Product, error) {
	p := r.find(key, value)
	if p == nil || p.Quantity+delta < 0 {
		return nil, nil
	}
	p.Quantity += delta
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) UpdateWithDelta(sku string, upd repository.ProductUpdate, delta int) (*entity.Product, error) {
	p := r.products[sku]
	if p == nil || p.Quantity+delta < 0 {
		return nil, nil
	}
	p.Name = upd.Name
	p.Brand = upd.Brand
	p.Category = upd.Category
	p.ReorderLevel = upd.ReorderLevel
	p.Expiry = upd.Expiry
	p.Quantity += delta
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) Delete(sku string) (bool, error) {
	if _, ok := r.products[sku]; !ok {
		return false, nil
	}
	delete(r.products, sku)
	return true, nil
}

// ─── InventoryLogRepository ──────────────────────────────────────────────────

type memLogRepo struct {
	entries   []*entity.InventoryLog
	appendErr error
	avg       float64
	avgErr    error
}

var _ repository.InventoryLogRepository = (*memLogRepo)(nil)

func (r *memLogRepo) Append(log *entity.InventoryLog) error {
	if r.appendErr != nil {
		return r.appendErr
	}
	cp := *log
	cp.ID = int64(len(r.entries) + 1)
	cp.CreatedAt = time.Now()
	r.entries = append(r.entries, &cp)
	return nil
}

func (r *memLogRepo) Query(repository.LogFilter) ([]*entity.InventoryLog, error) {
	return r.entries, nil
}

func (r *memLogRepo) Delete(id int64) (bool, error) {
	for i, e := range r.entries {
		if e.ID == id {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *memLogRepo) AvgDailySales(string) (float64, error) {
	return r.avg, r.avgErr
}

// ─── UserRepository ──────────────────────────────────────────────────────────

type memUserRepo struct {
	admins    []string
	adminsErr error
}

var _ repository.UserRepository = (*memUserRepo)(nil)

func (r *memUserRepo) Create(*entity.User) error                { return nil }
func (r *memUserRepo) GetByID(string) (*entity.User, error)     { return nil, nil }
func (r *memUserRepo) FindByEmail(string) (*entity.User, error) { return nil, nil }
func (r *memUserRepo) AdminEmails() ([]string, error)           { return r.admins, r.adminsErr }

// ─── MailSender ──────────────────────────────────────────────────────────────

type sentMail struct {
	to      []string
	subject string
	body    string
}

type memSender struct {
	sent    []sentMail
	sendErr error
}

var _ MailSender = (*memSender)(nil)

func (s *memSender) Send(recipients []string, subject, bodyHTML string) error {
	if s.sendErr != nil {
		return s.sendErr
	}
	s.sent = append(s.sent, sentMail{to: recipients, subject: subject, body: bodyHTML})
	return nil
}

// ─── BarcodeWriter ───────────────────────────────────────────────────────────

type memBarcodeWriter struct {
	written  map[string]string // sku -> code
	writeErr error
}

var _ BarcodeWriter = (*memBarcodeWriter)(nil)

func newMemBarcodeWriter() *memBarcodeWriter {
	return &memBarcodeWriter{written: make(map[string]string)}
}

func (w *memBarcodeWriter) Write(sku, code string) error {
	if w.writeErr != nil {
		return w.writeErr
	}
	w.written[sku] = code
	return nil
}

// ─── TxRunner ────────────────────────────────────────────────────────────────

// memTxRunner ejecuta el callback directamente sobre los repos en memoria.
// No simula rollback: los tests verifican que los caminos de error fallan
// antes de escribir la entrada del historial.
type memTxRunner struct {
	products *memProductRepo
	logs     *memLogRepo
}

var _ TxRunner = (*memTxRunner)(nil)

func (r *memTxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	logRepo repository.InventoryLogRepository,
) error) error {
	return fn(r.products, r.logs)
}
