package usecase

import (
	"github.com/jhoicas/stockroom-api/internal/application/dto"
	"github.com/jhoicas/stockroom-api/internal/domain"
	"github.com/jhoicas/stockroom-api/internal/domain/entity"
	"github.com/jhoicas/stockroom-api/internal/domain/repository"
)

// LogUseCase consulta y borrado administrativo del historial de movimientos.
// El append es interno al StockLedger y no se expone aquí.
type LogUseCase struct {
	repo repository.InventoryLogRepository
}

// NewLogUseCase construye el caso de uso.
func NewLogUseCase(repo repository.InventoryLogRepository) *LogUseCase {
	return &LogUseCase{repo: repo}
}

// Query devuelve el historial filtrado, más reciente primero.
func (uc *LogUseCase) Query(filter repository.LogFilter) ([]dto.LogResponse, error) {
	logs, err := uc.repo.Query(filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LogResponse, 0, len(logs))
	for _, l := range logs {
		items = append(items, toLogResponse(l))
	}
	return items, nil
}

// Delete borra una entrada por id. Devuelve ErrNotFound si no existe.
func (uc *LogUseCase) Delete(id int64) error {
	ok, err := uc.repo.Delete(id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

func toLogResponse(l *entity.InventoryLog) dto.LogResponse {
	return dto.LogResponse{
		ID:        l.ID,
		SKU:       l.SKU,
		Action:    l.Action,
		Amount:    l.Amount,
		User:      l.Username,
		CreatedAt: l.CreatedAt,
	}
}
