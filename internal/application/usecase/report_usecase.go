package usecase

import (
	"context"

	"github.com/jhoicas/stockroom-api/internal/application/dto"
	"github.com/jhoicas/stockroom-api/internal/domain/repository"
	"github.com/jhoicas/stockroom-api/internal/domain/stock"
)

// ReportUseCase vistas de solo lectura para los reportes del dashboard.
type ReportUseCase struct {
	repo repository.ReportRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(repo repository.ReportRepository) *ReportUseCase {
	return &ReportUseCase{repo: repo}
}

// CategoryDistribution productos por categoría.
func (uc *ReportUseCase) CategoryDistribution(ctx context.Context) ([]dto.CategoryCountResponse, error) {
	rows, err := uc.repo.CategoryDistribution(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryCountResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.CategoryCountResponse{Category: r.Category, Count: r.Count})
	}
	return out, nil
}

// LowQuantity productos en nivel Critical o Low Stock, con el estado que
// calcula el clasificador para cada fila.
func (uc *ReportUseCase) LowQuantity(ctx context.Context) ([]dto.LowStockItemResponse, error) {
	products, err := uc.repo.LowQuantity(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LowStockItemResponse, 0, len(products))
	for _, p := range products {
		out = append(out, dto.LowStockItemResponse{
			SKU:          p.SKU,
			Name:         p.Name,
			Quantity:     p.Quantity,
			ReorderLevel: p.ReorderLevel,
			Status:       string(stock.Classify(p.Quantity, p.ReorderLevel)),
		})
	}
	return out, nil
}

// DailyActivity movimientos por día en los últimos `days` días (mínimo 1).
func (uc *ReportUseCase) DailyActivity(ctx context.Context, days int) ([]dto.DailyActivityResponse, error) {
	if days < 1 {
		days = 1
	}
	rows, err := uc.repo.DailyActivity(ctx, days)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DailyActivityResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.DailyActivityResponse{
			Day:       r.Day.Format(dto.DateLayout),
			TotalLogs: r.Total,
		})
	}
	return out, nil
}

// TopSelling productos con más unidades vendidas, descendente.
func (uc *ReportUseCase) TopSelling(ctx context.Context, limit int) ([]dto.TopProductResponse, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := uc.repo.TopSelling(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TopProductResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.TopProductResponse{
			SKU:               r.SKU,
			Name:              r.Name,
			TotalQuantitySold: r.TotalSold,
		})
	}
	return out, nil
}
