package entity

import "time"

// Estados válidos para User.
const (
	UserStatusActive    = "active"
	UserStatusSuspended = "suspended"
)

// User representa un cliente registrado de la tienda.
// El directorio de usuarios es de solo inserción: las cuentas nunca se borran.
type User struct {
	ID           string
	Username     string // único en todo el directorio
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Membership   string // bronze, silver, gold, platinum
	Points       int64  // puntos acumulados por compras
	Status       string // active, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
