package entity

import "time"

// Roles del back office.
const (
	RoleAdmin     = "admin"     // catálogo de tarifas, usuarios y todo lo demás
	RoleBodeguero = "bodeguero" // movimientos de inventario
	RoleVendedor  = "vendedor"  // cotiza y consulta piezas
)

// Estados de usuario.
const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

// User usuario del back office de una joyería (Company).
type User struct {
	ID           string
	CompanyID    string
	Email        string
	PasswordHash string // bcrypt
	Name         string
	Role         string
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ValidRole indica si role es uno de los roles conocidos.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleBodeguero, RoleVendedor:
		return true
	}
	return false
}
