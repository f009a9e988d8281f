package http

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockroom-api/internal/application/dto"
	"github.com/jhoicas/stockroom-api/internal/application/usecase"
	"github.com/jhoicas/stockroom-api/internal/domain/repository"
)

// LogHandler maneja la consulta y el borrado del historial de movimientos.
type LogHandler struct {
	uc *usecase.LogUseCase
}

// NewLogHandler construye el handler.
func NewLogHandler(uc *usecase.LogUseCase) *LogHandler {
	return &LogHandler{uc: uc}
}

// Query godoc
// @Summary      Historial de movimientos con filtros
// @Tags         logs
// @Security     Bearer
// @Produce      json
// @Param        sku         query  string  false  "subcadena de SKU"
// @Param        action      query  string  false  "subcadena de acción"
// @Param        user        query  string  false  "subcadena de username"
// @Param        start_date  query  string  false  "YYYY-MM-DD inclusivo"
// @Param        end_date    query  string  false  "YYYY-MM-DD inclusivo"
// @Success      200  {array}  dto.LogResponse
// @Router       /api/logs [get]
func (h *LogHandler) Query(c *fiber.Ctx) error {
	filter, err := parseLogFilter(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILTER", Message: err.Error()})
	}
	items, err := h.uc.Query(filter)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(items)
}

// parseLogFilter arma el filtro del historial desde la query string. Lo usan
// tanto la consulta JSON como los exports.
func parseLogFilter(c *fiber.Ctx) (repository.LogFilter, error) {
	filter := repository.LogFilter{
		SKU:    c.Query("sku"),
		Action: c.Query("action"),
		User:   c.Query("user"),
	}
	if s := c.Query("start_date"); s != "" {
		t, err := time.Parse(dto.DateLayout, s)
		if err != nil {
			return filter, errors.New("start_date debe ser YYYY-MM-DD")
		}
		filter.From = &t
	}
	if s := c.Query("end_date"); s != "" {
		t, err := time.Parse(dto.DateLayout, s)
		if err != nil {
			return filter, errors.New("end_date debe ser YYYY-MM-DD")
		}
		// Límite inclusivo: cubre todo el día indicado.
		end := t.Add(24*time.Hour - time.Nanosecond)
		filter.To = &end
	}
	return filter, nil
}

// Delete godoc
// @Summary      Eliminar una entrada del historial
// @Tags         logs
// @Security     Bearer
// @Param        id  path  int  true  "ID de la entrada"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/logs/{id} [delete]
func (h *LogHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id debe ser numérico"})
	}
	if err := h.uc.Delete(id); err != nil {
		return mapDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
