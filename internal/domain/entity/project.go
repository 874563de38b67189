package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProjectState estados de un negocio.
type ProjectState string

const (
	ProjectInReview  ProjectState = "IN_REVIEW"
	ProjectCancelled ProjectState = "CANCELLED"
	ProjectFinalized ProjectState = "FINALIZED"
)

// ValidTarget indica si el estado es un destino permitido de changeState.
func (s ProjectState) ValidTarget() bool {
	switch s {
	case ProjectInReview, ProjectCancelled, ProjectFinalized:
		return true
	}
	return false
}

// Terminal indica si el negocio ya no admite mutaciones.
func (s ProjectState) Terminal() bool {
	return s == ProjectCancelled || s == ProjectFinalized
}

// Project ("negocio") es el encargo ejecutable creado a partir de una
// cotización APPROVED. Los campos Quotation* son una copia tomada en el
// momento de la conversión: snapshot de lectura, no una vista en vivo de la
// cotización. Un cambio posterior en la cotización no se propaga.
type Project struct {
	ID          string
	Code        string
	QuotationID string // exactamente un negocio por cotización
	State       ProjectState

	// Snapshot de la cotización al momento de la conversión.
	QuotationCode         string
	QuotationState        QuotationState
	QuotationDate         time.Time
	QuotationDescription  string
	QuotationObservations string
	QuotationSubtotal     decimal.Decimal
	QuotationTax          decimal.Decimal
	QuotationTotal        decimal.Decimal

	Budget         decimal.Decimal
	Advance        decimal.Decimal // Σ pagos no eliminados; lo mantiene el libro de pagos
	Balance        decimal.Decimal // QuotationTotal − Advance, derivado
	EstimatedStart time.Time
	EstimatedEnd   time.Time
	Responsible    string
	Observations   string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// RecalculateBalance deriva el saldo pendiente del total cotizado y el anticipo.
func (p *Project) RecalculateBalance() {
	p.Balance = p.QuotationTotal.Sub(p.Advance)
}
