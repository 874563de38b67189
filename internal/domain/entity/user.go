package entity

import "time"

// RoleAdmin único rol del sistema (administrador de la galería).
const RoleAdmin = "admin"

// User usuario del sistema. Hoy existe un solo administrador, sembrado
// desde la configuración al arrancar; la tabla sobrevive al clean-data.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}
