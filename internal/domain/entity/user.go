package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "Admin"
	RoleEmployee = "Employee"
	RoleSecurity = "Security"
)

// ValidRole indica si el rol existe en el sistema.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleEmployee, RoleSecurity:
		return true
	}
	return false
}

// User representa una cuenta del personal (administrador, empleado anfitrión o guardia).
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // Admin, Employee, Security
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
