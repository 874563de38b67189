package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Jawbreaker1989/queenscorner-api/internal/domain/entity"
)

// CreatePaymentRequest body para POST /api/pagos.
type CreatePaymentRequest struct {
	ProjectID    string          `json:"negocioId"`
	Amount       decimal.Decimal `json:"monto"`
	Method       string          `json:"metodo"`
	Reference    string          `json:"referencia,omitempty"`
	Observations string          `json:"observaciones,omitempty"`
	PaidAt       *time.Time      `json:"fechaPago,omitempty"`
}

// PaymentResponse pago en respuestas; incluye los saldos del negocio tras
// el recálculo para que el caller no tenga que releer.
type PaymentResponse struct {
	ID             string          `json:"id"`
	ProjectID      string          `json:"negocioId"`
	Amount         decimal.Decimal `json:"monto"`
	Method         string          `json:"metodo"`
	Reference      string          `json:"referencia,omitempty"`
	Observations   string          `json:"observaciones,omitempty"`
	PaidAt         time.Time       `json:"fechaPago"`
	CreatedAt      time.Time       `json:"fechaCreacion"`
	ProjectAdvance decimal.Decimal `json:"anticipoNegocio"`
	ProjectBalance decimal.Decimal `json:"saldoNegocio"`
}

// ToPaymentResponse convierte el pago (y los saldos actuales del negocio).
func ToPaymentResponse(p *entity.Payment, project *entity.Project) *PaymentResponse {
	if p == nil {
		return nil
	}
	out := &PaymentResponse{
		ID:           p.ID,
		ProjectID:    p.ProjectID,
		Amount:       p.Amount,
		Method:       string(p.Method),
		Reference:    p.Reference,
		Observations: p.Observations,
		PaidAt:       p.PaidAt,
		CreatedAt:    p.CreatedAt,
	}
	if project != nil {
		out.ProjectAdvance = project.Advance
		out.ProjectBalance = project.Balance
	}
	return out
}
