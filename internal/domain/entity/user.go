package entity

import "time"

// Roles de la aplicación.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// User usuario del sistema. Los admin reciben las alertas de stock bajo.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	Role         string // RoleAdmin | RoleStaff
	CreatedAt    time.Time
}

// ValidRole indica si el rol es uno de los reconocidos.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleStaff
}
