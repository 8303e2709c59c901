package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin       = "admin"
	RoleStorekeeper = "storekeeper" // thủ kho: documentos y existencias
	RoleAccountant  = "accountant"  // kế toán: nómina y reportes
)

// Estados de User.
const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

// User representa un usuario del panel de administración.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, storekeeper, accountant
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ValidRole indica si role es uno de los roles conocidos.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleStorekeeper, RoleAccountant:
		return true
	}
	return false
}
