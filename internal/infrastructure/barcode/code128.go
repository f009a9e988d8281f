// Package barcode genera las imágenes Code128 de los productos.
package barcode

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"

	"github.com/jhoicas/stockroom-api/internal/application/inventory"
)

var _ inventory.BarcodeWriter = (*Code128Writer)(nil)

// Dimensiones del PNG generado.
const (
	imgWidth  = 300
	imgHeight = 80
)

// Code128Writer genera un PNG Code128 por SKU en el directorio configurado.
type Code128Writer struct {
	dir string
}

// NewCode128Writer construye el generador.
func NewCode128Writer(dir string) *Code128Writer {
	return &Code128Writer{dir: dir}
}

// Write codifica `code` como Code128 y lo guarda como <dir>/<sku>.png.
func (w *Code128Writer) Write(sku, code string) error {
	bc, err := code128.Encode(code)
	if err != nil {
		return fmt.Errorf("encode code128: %w", err)
	}
	scaled, err := barcode.Scale(bc, imgWidth, imgHeight)
	if err != nil {
		return fmt.Errorf("scale barcode: %w", err)
	}
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("crear directorio de barcodes: %w", err)
	}
	f, err := os.Create(w.Path(sku))
	if err != nil {
		return fmt.Errorf("crear archivo de barcode: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, scaled); err != nil {
		return fmt.Errorf("escribir png: %w", err)
	}
	return nil
}

// Path ruta del PNG de un SKU.
func (w *Code128Writer) Path(sku string) string {
	return filepath.Join(w.dir, sku+".png")
}
