package http

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockroom-api/internal/application/dto"
	"github.com/jhoicas/stockroom-api/internal/application/inventory"
	"github.com/jhoicas/stockroom-api/internal/application/usecase"
	"github.com/jhoicas/stockroom-api/internal/domain"
	"github.com/jhoicas/stockroom-api/internal/domain/repository"
)

// ProductHandler maneja el CRUD de productos, las mutaciones de cantidad y el
// flujo de escaneo por código de barras.
type ProductHandler struct {
	ledger     *inventory.StockLedger
	uc         *usecase.ProductUseCase
	barcodeDir string
}

// NewProductHandler construye el handler.
func NewProductHandler(ledger *inventory.StockLedger, uc *usecase.ProductUseCase, barcodeDir string) *ProductHandler {
	return &ProductHandler{ledger: ledger, uc: uc, barcodeDir: barcodeDir}
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Producto"
// @Success      201   {object}  dto.CreateProductResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	product, err := h.ledger.AddProduct(c.Context(), in, GetUserID(c))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreateProductResponse{
		Product:    *usecase.ToProductResponse(product),
		BarcodeURL: "/api/products/barcode/" + product.SKU,
	})
}

// List godoc
// @Summary      Listar productos con filtros
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        sku        query  string  false  "subcadena de SKU"
// @Param        name       query  string  false  "subcadena de nombre"
// @Param        category   query  string  false  "subcadena de categoría"
// @Param        stock_ll   query  int     false  "cantidad mayor que"
// @Param        stock_ul   query  int     false  "cantidad menor que"
// @Param        low_stock  query  bool    false  "solo stock bajo/crítico"
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	filter, err := parseProductFilter(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILTER", Message: err.Error()})
	}
	items, err := h.uc.List(filter)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(items)
}

// Update godoc
// @Summary      Edición administrativa de un producto
// @Description  Actualiza campos descriptivos y aplica un ajuste de cantidad
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        sku   path  string                    true  "SKU"
// @Param        body  body  dto.UpdateProductRequest  true  "Cambios"
// @Success      200   {object}  dto.ProductResponse
// @Router       /api/products/{sku} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	product, err := h.ledger.AdminUpdate(c.Context(), c.Params("sku"), in, GetUserID(c))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(usecase.ToProductResponse(product))
}

// Mutate godoc
// @Summary      Mutación de cantidad por SKU (sale, restock, return)
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        sku   path  string               true  "SKU"
// @Param        body  body  dto.MutationRequest  true  "Acción y cantidad"
// @Success      200   {object}  dto.ProductResponse
// @Router       /api/products/{sku}/quantity [patch]
func (h *ProductHandler) Mutate(c *fiber.Ctx) error {
	return h.mutateBy(c, repository.KeySKU, c.Params("sku"))
}

// ScanGet godoc
// @Summary      Buscar producto escaneado
// @Tags         scan
// @Security     Bearer
// @Produce      json
// @Param        barcode  path  string  true  "Código de barras"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/scan/{barcode} [get]
func (h *ProductHandler) ScanGet(c *fiber.Ctx) error {
	item, err := h.uc.GetByBarcode(c.Params("barcode"))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(item)
}

// ScanMutate godoc
// @Summary      Mutación de cantidad por código de barras
// @Tags         scan
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        barcode  path  string               true  "Código de barras"
// @Param        body     body  dto.MutationRequest  true  "Acción y cantidad"
// @Success      200  {object}  dto.ProductResponse
// @Router       /api/products/scan/{barcode} [put]
func (h *ProductHandler) ScanMutate(c *fiber.Ctx) error {
	return h.mutateBy(c, repository.KeyBarcode, c.Params("barcode"))
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         products
// @Security     Bearer
// @Param        sku  path  string  true  "SKU"
// @Success      204
// @Router       /api/products/{sku} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.ledger.DeleteProduct(c.Context(), c.Params("sku"), GetUserID(c)); err != nil {
		return mapDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// BarcodeImage godoc
// @Summary      Imagen Code128 del producto
// @Tags         products
// @Security     Bearer
// @Produce      png
// @Param        sku  path  string  true  "SKU"
// @Success      200
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/barcode/{sku} [get]
func (h *ProductHandler) BarcodeImage(c *fiber.Ctx) error {
	path := filepath.Join(h.barcodeDir, c.Params("sku")+".png")
	if _, err := os.Stat(path); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "imagen de barcode no encontrada"})
	}
	return c.SendFile(path)
}

func (h *ProductHandler) mutateBy(c *fiber.Ctx, key repository.ProductKey, value string) error {
	var in dto.MutationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	product, err := h.ledger.ApplyMutation(c.Context(), key, value, in.Action, in.Amount, GetUserID(c))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(usecase.ToProductResponse(product))
}

// parseProductFilter arma el filtro de listado desde la query string.
func parseProductFilter(c *fiber.Ctx) (repository.ProductFilter, error) {
	filter := repository.ProductFilter{
		SKU:      c.Query("sku"),
		Name:     c.Query("name"),
		Category: c.Query("category"),
		LowStock: c.QueryBool("low_stock"),
	}
	if s := c.Query("stock_ll"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return filter, errors.New("stock_ll debe ser numérico")
		}
		filter.StockAbove = &n
	}
	if s := c.Query("stock_ul"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return filter, errors.New("stock_ul debe ser numérico")
		}
		filter.StockBelow = &n
	}
	return filter, nil
}

// mapDomainError traduce errores de dominio a códigos HTTP.
func mapDomainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidAction), errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: err.Error()})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
