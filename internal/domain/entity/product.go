package entity

import "time"

// BarcodePrefix prefijo con el que se deriva el código de barras desde el SKU.
const BarcodePrefix = "INV-"

// Product representa un producto del inventario identificado por SKU.
// Quantity es el stock autoritativo y solo se modifica vía StockLedger;
// Barcode se deriva del SKU al crear el producto y sirve como clave alterna
// para el flujo de escaneo del personal de bodega.
type Product struct {
	SKU          string
	Name         string
	Brand        string
	Category     string
	Quantity     int
	ReorderLevel int
	Expiry       *time.Time // opcional
	Barcode      string     // "INV-" + SKU
}

// DeriveBarcode calcula el código de barras determinístico de un SKU.
func DeriveBarcode(sku string) string {
	return BarcodePrefix + sku
}
