package inventory

import (
	"context"

	"github.com/jhoicas/stockroom-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el cambio de cantidad y su
// entrada en el historial se confirmen o descarten juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		logRepo repository.InventoryLogRepository,
	) error) error
}

// MailSender puerto del transporte de correo para alertas.
type MailSender interface {
	Send(recipients []string, subject, bodyHTML string) error
}

// BarcodeWriter puerto de generación de la imagen Code128 de un producto.
// La generación es best-effort: su fallo no afecta la creación del producto.
type BarcodeWriter interface {
	Write(sku, code string) error
}
