package entity

import "time"

// Client representa un cliente de la galería/taller.
// El borrado es lógico: Active pasa a false y el registro nunca se elimina
// físicamente una vez referenciado por una cotización.
type Client struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Address   string
	City      string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
