package dto

import (
	"time"

	"github.com/Jawbreaker1989/queenscorner-api/internal/domain/entity"
)

// CreateClientRequest body para POST /api/clientes.
type CreateClientRequest struct {
	Name    string `json:"nombre"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"telefono,omitempty"`
	Address string `json:"direccion,omitempty"`
	City    string `json:"ciudad,omitempty"`
}

// UpdateClientRequest body para PUT /api/clientes/:id (solo campos de contacto).
type UpdateClientRequest struct {
	Name    *string `json:"nombre,omitempty"`
	Email   *string `json:"email,omitempty"`
	Phone   *string `json:"telefono,omitempty"`
	Address *string `json:"direccion,omitempty"`
	City    *string `json:"ciudad,omitempty"`
}

// ClientResponse cliente en respuestas.
type ClientResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"nombre"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"telefono,omitempty"`
	Address   string    `json:"direccion,omitempty"`
	City      string    `json:"ciudad,omitempty"`
	Active    bool      `json:"activo"`
	CreatedAt time.Time `json:"fechaCreacion"`
}

// ToClientResponse convierte la entidad a su representación de API.
func ToClientResponse(c *entity.Client) *ClientResponse {
	if c == nil {
		return nil
	}
	return &ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		City:      c.City,
		Active:    c.Active,
		CreatedAt: c.CreatedAt,
	}
}
