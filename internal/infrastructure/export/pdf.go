package export

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/stockroom-api/internal/application/dto"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// PDFExporter genera los listados en PDF usando Maroto v2.
type PDFExporter struct{}

// NewPDFExporter construye el exportador.
func NewPDFExporter() *PDFExporter { return &PDFExporter{} }

func newDocument(title string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		Build()
	return maroto.New(cfg)
}

// titleRow: título del reporte subrayado con una línea.
func titleRow(title string) []core.Row {
	return []core.Row{
		row.New(10).Add(
			col.New(12).Add(text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			})),
		),
		line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}),
	}
}

// headerCell: celda de cabecera de tabla.
func headerCell(label string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(label, props.Text{
		Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 1,
	}))
}

// bodyCell: celda de dato.
func bodyCell(value string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(value, props.Text{
		Size: 8, Align: a, Top: 1,
	}))
}

// ProductsPDF genera el listado de productos filtrado.
func (e *PDFExporter) ProductsPDF(products []dto.ProductResponse) ([]byte, error) {
	m := newDocument("Product List")
	m.AddRows(titleRow("Filtered Product List")...)

	m.AddRows(row.New(7).Add(
		headerCell("SKU", 2, align.Left),
		headerCell("Name", 3, align.Left),
		headerCell("Category", 2, align.Left),
		headerCell("Qty", 1, align.Right),
		headerCell("Reorder", 2, align.Right),
		headerCell("Status", 2, align.Left),
	))
	for _, p := range products {
		m.AddRows(row.New(6).Add(
			bodyCell(p.SKU, 2, align.Left),
			bodyCell(p.Name, 3, align.Left),
			bodyCell(p.Category, 2, align.Left),
			bodyCell(fmt.Sprintf("%d", p.Quantity), 1, align.Right),
			bodyCell(fmt.Sprintf("%d", p.ReorderLevel), 2, align.Right),
			bodyCell(p.Status, 2, align.Left),
		))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar listado de productos: %w", err)
	}
	return doc.GetBytes(), nil
}

// LogsPDF genera el historial de movimientos filtrado.
func (e *PDFExporter) LogsPDF(logs []dto.LogResponse) ([]byte, error) {
	m := newDocument("Inventory Logs")
	m.AddRows(titleRow("Inventory Activity Logs")...)

	m.AddRows(row.New(7).Add(
		headerCell("SKU", 2, align.Left),
		headerCell("Action", 2, align.Left),
		headerCell("Amount", 2, align.Right),
		headerCell("User", 3, align.Left),
		headerCell("Date", 3, align.Right),
	))
	for _, l := range logs {
		m.AddRows(row.New(6).Add(
			bodyCell(l.SKU, 2, align.Left),
			bodyCell(actionLabel(l.Action), 2, align.Left),
			bodyCell(amountLabel(l.Amount), 2, align.Right),
			bodyCell(l.User, 3, align.Left),
			bodyCell(l.CreatedAt.Format("2006-01-02 15:04"), 3, align.Right),
		))
	}

	m.AddRows(row.New(8).Add(
		col.New(12).Add(text.New(
			fmt.Sprintf("%d entries", len(logs)),
			props.Text{Size: 8, Color: colorGray, Top: 3},
		)),
	))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar historial: %w", err)
	}
	return doc.GetBytes(), nil
}
