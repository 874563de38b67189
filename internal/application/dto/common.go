package dto

import "time"

// Envelope envoltura uniforme de todas las respuestas del API.
type Envelope struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Data      any    `json:"data"`
	Timestamp string `json:"timestamp"`
	Status    int    `json:"status"`
}

// NewEnvelope arma la envoltura con el timestamp ISO-8601 actual.
func NewEnvelope(success bool, message string, data any, status int) Envelope {
	return Envelope{
		Success:   success,
		Message:   message,
		Data:      data,
		Timestamp: time.Now().Format(time.RFC3339),
		Status:    status,
	}
}

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// DefaultPage aplica valores por defecto si Limit/Offset son cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// ChangeStateRequest body de PATCH /:id/estado para todos los documentos.
type ChangeStateRequest struct {
	State        string `json:"estado"`
	Observations string `json:"observaciones,omitempty"`
}
