package repository

import "github.com/jhoicas/stockroom-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	// AdminEmails devuelve los correos de todos los usuarios con rol admin,
	// destinatarios de las alertas de stock bajo.
	AdminEmails() ([]string, error)
}
