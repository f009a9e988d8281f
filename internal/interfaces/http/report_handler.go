package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockroom-api/internal/application/usecase"
)

// ReportHandler expone los reportes del dashboard.
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// CategoryDistribution godoc
// @Summary      Productos por categoría
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CategoryCountResponse
// @Router       /api/reports/category-distribution [get]
func (h *ReportHandler) CategoryDistribution(c *fiber.Ctx) error {
	rows, err := h.uc.CategoryDistribution(c.Context())
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(rows)
}

// LowQuantity godoc
// @Summary      Productos en nivel crítico o bajo
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.LowStockItemResponse
// @Router       /api/reports/low-quantity [get]
func (h *ReportHandler) LowQuantity(c *fiber.Ctx) error {
	rows, err := h.uc.LowQuantity(c.Context())
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(rows)
}

// DailyActivity godoc
// @Summary      Movimientos por día
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        days  query  int  false  "ventana en días (default 7)"
// @Success      200  {array}  dto.DailyActivityResponse
// @Router       /api/reports/daily-activity [get]
func (h *ReportHandler) DailyActivity(c *fiber.Ctx) error {
	days := c.QueryInt("days", 7)
	rows, err := h.uc.DailyActivity(c.Context(), days)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(rows)
}

// TopSelling godoc
// @Summary      Productos más vendidos
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "máximo de filas (default 10)"
// @Success      200  {array}  dto.TopProductResponse
// @Router       /api/reports/top-selling [get]
func (h *ReportHandler) TopSelling(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 10)
	rows, err := h.uc.TopSelling(c.Context(), limit)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(rows)
}
