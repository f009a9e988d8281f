package dto

// CreateProductRequest entrada para crear un producto. El barcode no se envía:
// se deriva del SKU en el servidor.
type CreateProductRequest struct {
	SKU          string  `json:"sku" validate:"required,min=1,max=100"`
	Name         string  `json:"name" validate:"required,min=1,max=200"`
	Brand        string  `json:"brand"`
	Category     string  `json:"category"`
	Quantity     int     `json:"quantity" validate:"min=0"`
	ReorderLevel int     `json:"reorder_level" validate:"min=0"`
	Expiry       *string `json:"expiry"` // YYYY-MM-DD, opcional
}

// MutationRequest mutación de cantidad (venta, reposición o devolución).
type MutationRequest struct {
	Action string `json:"action" validate:"required,oneof=sale restock return"`
	Amount int    `json:"amount" validate:"required,min=1"`
}

// UpdateProductRequest edición administrativa: campos descriptivos más un
// delta de cantidad aplicado según la acción, todo en una sola operación.
type UpdateProductRequest struct {
	Name         string  `json:"name" validate:"required,min=1,max=200"`
	Brand        string  `json:"brand"`
	Category     string  `json:"category"`
	ReorderLevel int     `json:"reorder_level" validate:"min=0"`
	Expiry       *string `json:"expiry"` // YYYY-MM-DD, opcional
	Action       string  `json:"action" validate:"required,oneof=sale restock return"`
	Amount       int     `json:"amount" validate:"required,min=1"`
}

// ProductResponse salida de un producto con su nivel de stock calculado.
type ProductResponse struct {
	SKU          string  `json:"sku"`
	Name         string  `json:"name"`
	Brand        string  `json:"brand"`
	Category     string  `json:"category"`
	Quantity     int     `json:"quantity"`
	ReorderLevel int     `json:"reorder_level"`
	Expiry       *string `json:"expiry,omitempty"`
	Barcode      string  `json:"barcode"`
	Status       string  `json:"status"`
}

// CreateProductResponse respuesta de creación con la URL de la imagen del barcode.
type CreateProductResponse struct {
	Product    ProductResponse `json:"product"`
	BarcodeURL string          `json:"barcode_url"`
}
