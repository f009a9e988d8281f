package usecase

import (
	"github.com/jhoicas/stockroom-api/internal/application/dto"
	"github.com/jhoicas/stockroom-api/internal/domain"
	"github.com/jhoicas/stockroom-api/internal/domain/entity"
	"github.com/jhoicas/stockroom-api/internal/domain/repository"
	"github.com/jhoicas/stockroom-api/internal/domain/stock"
)

// ProductUseCase consultas de lectura sobre productos. Las mutaciones de
// cantidad y la creación/borrado viven en inventory.StockLedger.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// List lista productos con filtros opcionales, ordenados por nombre.
func (uc *ProductUseCase) List(filter repository.ProductFilter) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *ToProductResponse(p))
	}
	return items, nil
}

// GetByBarcode busca un producto por su código de barras (flujo de escaneo).
func (uc *ProductUseCase) GetByBarcode(barcode string) (*dto.ProductResponse, error) {
	p, err := uc.repo.Get(repository.KeyBarcode, barcode)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return ToProductResponse(p), nil
}

// ToProductResponse convierte la entidad en DTO, calculando el nivel de stock.
func ToProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	var expiry *string
	if p.Expiry != nil {
		s := p.Expiry.Format(dto.DateLayout)
		expiry = &s
	}
	return &dto.ProductResponse{
		SKU:          p.SKU,
		Name:         p.Name,
		Brand:        p.Brand,
		Category:     p.Category,
		Quantity:     p.Quantity,
		ReorderLevel: p.ReorderLevel,
		Expiry:       expiry,
		Barcode:      p.Barcode,
		Status:       string(stock.Classify(p.Quantity, p.ReorderLevel)),
	}
}
