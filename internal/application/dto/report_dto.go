package dto

// CategoryCountResponse productos por categoría.
type CategoryCountResponse struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// LowStockItemResponse fila del reporte de stock bajo/borderline.
type LowStockItemResponse struct {
	SKU          string `json:"sku"`
	Name         string `json:"name"`
	Quantity     int    `json:"quantity"`
	ReorderLevel int    `json:"reorder_level"`
	Status       string `json:"status"`
}

// DailyActivityResponse total de movimientos registrados en un día.
type DailyActivityResponse struct {
	Day       string `json:"day"` // YYYY-MM-DD
	TotalLogs int    `json:"total_logs"`
}

// TopProductResponse unidades vendidas acumuladas de un producto.
type TopProductResponse struct {
	SKU               string `json:"sku"`
	Name              string `json:"name"`
	TotalQuantitySold int    `json:"total_quantity_sold"`
}
