// Package export serializa listados de productos y del historial a Excel y
// PDF para descarga. Son consumidores de solo lectura: toman los DTOs ya
// filtrados por los casos de uso.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/stockroom-api/internal/application/dto"
)

// ExcelExporter genera libros .xlsx con excelize.
type ExcelExporter struct{}

// NewExcelExporter construye el exportador.
func NewExcelExporter() *ExcelExporter { return &ExcelExporter{} }

const sheet = "Sheet1"

// ProductsExcel genera un libro con una fila por producto.
func (e *ExcelExporter) ProductsExcel(products []dto.ProductResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	headers := []string{"SKU", "NAME", "BRAND", "CATEGORY", "QUANTITY", "REORDER_LEVEL", "EXPIRY", "STATUS"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("excel header: %w", err)
		}
	}
	for i, p := range products {
		expiry := ""
		if p.Expiry != nil {
			expiry = *p.Expiry
		}
		values := []any{p.SKU, p.Name, p.Brand, p.Category, p.Quantity, p.ReorderLevel, expiry, p.Status}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("excel row: %w", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel write: %w", err)
	}
	return buf.Bytes(), nil
}

// LogsExcel genera un libro con una fila por entrada del historial.
func (e *ExcelExporter) LogsExcel(logs []dto.LogResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	headers := []string{"ID", "SKU", "ACTION", "AMOUNT", "USER", "CREATED_AT"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("excel header: %w", err)
		}
	}
	for i, l := range logs {
		values := []any{l.ID, l.SKU, actionLabel(l.Action), amountLabel(l.Amount), l.User,
			l.CreatedAt.Format("2006-01-02 15:04:05")}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("excel row: %w", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel write: %w", err)
	}
	return buf.Bytes(), nil
}

// actionLabel representación textual de la acción (la entrada de creación no tiene).
func actionLabel(action *string) string {
	if action == nil {
		return "created"
	}
	return *action
}

func amountLabel(amount *int) string {
	if amount == nil {
		return ""
	}
	return fmt.Sprintf("%d", *amount)
}
