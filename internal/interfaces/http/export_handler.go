package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockroom-api/internal/application/usecase"
	"github.com/jhoicas/stockroom-api/internal/infrastructure/export"
)

const (
	excelMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	pdfMIME   = "application/pdf"
)

// ExportHandler genera descargas Excel/PDF de los listados filtrados. Acepta
// los mismos query params que los listados JSON correspondientes.
type ExportHandler struct {
	products *usecase.ProductUseCase
	logs     *usecase.LogUseCase
	excel    *export.ExcelExporter
	pdf      *export.PDFExporter
}

// NewExportHandler construye el handler.
func NewExportHandler(
	products *usecase.ProductUseCase,
	logs *usecase.LogUseCase,
	excel *export.ExcelExporter,
	pdf *export.PDFExporter,
) *ExportHandler {
	return &ExportHandler{products: products, logs: logs, excel: excel, pdf: pdf}
}

// ProductsExcel godoc
// @Summary      Exportar productos a Excel
// @Tags         exports
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Router       /api/exports/products/excel [get]
func (h *ExportHandler) ProductsExcel(c *fiber.Ctx) error {
	filter, err := parseProductFilter(c)
	if err != nil {
		return mapDomainError(c, err)
	}
	items, err := h.products.List(filter)
	if err != nil {
		return mapDomainError(c, err)
	}
	data, err := h.excel.ProductsExcel(items)
	if err != nil {
		return mapDomainError(c, err)
	}
	return sendAttachment(c, data, excelMIME, fileName("products", "xlsx"))
}

// ProductsPDF godoc
// @Summary      Exportar productos a PDF
// @Tags         exports
// @Security     Bearer
// @Produce      application/pdf
// @Router       /api/exports/products/pdf [get]
func (h *ExportHandler) ProductsPDF(c *fiber.Ctx) error {
	filter, err := parseProductFilter(c)
	if err != nil {
		return mapDomainError(c, err)
	}
	items, err := h.products.List(filter)
	if err != nil {
		return mapDomainError(c, err)
	}
	data, err := h.pdf.ProductsPDF(items)
	if err != nil {
		return mapDomainError(c, err)
	}
	return sendAttachment(c, data, pdfMIME, fileName("products", "pdf"))
}

// LogsExcel godoc
// @Summary      Exportar historial a Excel
// @Tags         exports
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Router       /api/exports/logs/excel [get]
func (h *ExportHandler) LogsExcel(c *fiber.Ctx) error {
	filter, err := parseLogFilter(c)
	if err != nil {
		return mapDomainError(c, err)
	}
	items, err := h.logs.Query(filter)
	if err != nil {
		return mapDomainError(c, err)
	}
	data, err := h.excel.LogsExcel(items)
	if err != nil {
		return mapDomainError(c, err)
	}
	return sendAttachment(c, data, excelMIME, fileName("inventory_logs", "xlsx"))
}

// LogsPDF godoc
// @Summary      Exportar historial a PDF
// @Tags         exports
// @Security     Bearer
// @Produce      application/pdf
// @Router       /api/exports/logs/pdf [get]
func (h *ExportHandler) LogsPDF(c *fiber.Ctx) error {
	filter, err := parseLogFilter(c)
	if err != nil {
		return mapDomainError(c, err)
	}
	items, err := h.logs.Query(filter)
	if err != nil {
		return mapDomainError(c, err)
	}
	data, err := h.pdf.LogsPDF(items)
	if err != nil {
		return mapDomainError(c, err)
	}
	return sendAttachment(c, data, pdfMIME, fileName("inventory_logs", "pdf"))
}

func sendAttachment(c *fiber.Ctx, data []byte, mime, name string) error {
	c.Set(fiber.HeaderContentType, mime)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	return c.Send(data)
}

func fileName(prefix, ext string) string {
	return fmt.Sprintf("%s_%s.%s", prefix, time.Now().Format("20060102_150405"), ext)
}
