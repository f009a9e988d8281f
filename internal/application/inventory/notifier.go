package inventory

import (
	"fmt"
	"math"

	"github.com/jhoicas/stockroom-api/internal/domain/entity"
	"github.com/jhoicas/stockroom-api/internal/domain/repository"
	"github.com/jhoicas/stockroom-api/internal/domain/stock"
	"github.com/jhoicas/stockroom-api/pkg/logger"
)

// LowStockNotifier decide si una venta que dejó al producto en nivel Critical
// amerita un correo a los admin, calcula la cantidad de reposición sugerida y
// suprime alertas repetidas dentro de la ventana de cooldown.
//
// Es best-effort por contrato: ningún fallo aquí (consulta de ventas, correo)
// se propaga ni revierte la mutación de stock que lo disparó.
type LowStockNotifier struct {
	logRepo      repository.InventoryLogRepository
	userRepo     repository.UserRepository
	sender       MailSender
	cooldown     *CooldownMap
	leadTimeDays int
	log          *logger.Logger
}

// NewLowStockNotifier construye el notificador. leadTimeDays son los días de
// reposición asumidos para dimensionar la cantidad sugerida.
func NewLowStockNotifier(
	logRepo repository.InventoryLogRepository,
	userRepo repository.UserRepository,
	sender MailSender,
	cooldown *CooldownMap,
	leadTimeDays int,
	log *logger.Logger,
) *LowStockNotifier {
	if leadTimeDays <= 0 {
		leadTimeDays = 5
	}
	return &LowStockNotifier{
		logRepo:      logRepo,
		userRepo:     userRepo,
		sender:       sender,
		cooldown:     cooldown,
		leadTimeDays: leadTimeDays,
		log:          log,
	}
}

// MaybeAlert evalúa el estado post-venta de un producto y envía la alerta si
// corresponde. Solo alerta en nivel Critical (quantity <= reorder_level); los
// niveles Low Stock e In Stock no generan correo.
func (n *LowStockNotifier) MaybeAlert(product *entity.Product) {
	if stock.Classify(product.Quantity, product.ReorderLevel) != stock.StatusCritical {
		return
	}
	if n.cooldown.Active(product.SKU) {
		n.log.Debug().Str("sku", product.SKU).Msg("alerta suprimida por cooldown")
		return
	}

	avg, err := n.logRepo.AvgDailySales(product.SKU)
	if err != nil {
		n.log.Error().Err(err).Str("sku", product.SKU).Msg("promedio de ventas para alerta")
		return
	}
	if avg <= 0 {
		avg = 1 // sin historial de ventas en la ventana: asumir 1 unidad/día
	}
	suggested := int(math.Ceil(avg * float64(n.leadTimeDays)))

	admins, err := n.userRepo.AdminEmails()
	if err != nil {
		n.log.Error().Err(err).Str("sku", product.SKU).Msg("destinatarios admin para alerta")
		return
	}
	if len(admins) == 0 {
		return
	}

	subject := fmt.Sprintf("Low Stock Alert: %s", product.Name)
	body := fmt.Sprintf(`<h2>Product Running Low!</h2>
<p><strong>Product:</strong> %s</p>
<p><strong>SKU:</strong> %s</p>
<p><strong>Current Quantity:</strong> %d</p>
<p><strong>Reorder Level:</strong> %d</p>
<p><strong>Suggested Order Quantity:</strong> %d</p>`,
		product.Name, product.SKU, product.Quantity, product.ReorderLevel, suggested)

	if err := n.sender.Send(admins, subject, body); err != nil {
		n.log.Error().Err(err).Str("sku", product.SKU).Msg("envío de alerta de stock bajo")
		return
	}

	// Solo después de un envío exitoso entra el SKU en cooldown.
	n.cooldown.Mark(product.SKU)
	n.log.Info().Str("sku", product.SKU).Int("suggested_qty", suggested).
		Strs("recipients", admins).Msg("alerta de stock bajo enviada")
}
