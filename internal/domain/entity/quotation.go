package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// IVARate tasa de IVA aplicada a todos los documentos (Colombia, 19%).
var IVARate = decimal.New(19, -2)

// QuotationState estados de una cotización.
type QuotationState string

const (
	QuotationDraft    QuotationState = "DRAFT"
	QuotationSent     QuotationState = "SENT"
	QuotationApproved QuotationState = "APPROVED"
	QuotationRejected QuotationState = "REJECTED"
)

// ValidTarget indica si el estado es un destino permitido de changeState.
// DRAFT nunca es destino; entre SENT/APPROVED/REJECTED no se valida
// adyacencia (permisividad heredada del diseño original, mantenida a propósito).
func (s QuotationState) ValidTarget() bool {
	switch s {
	case QuotationSent, QuotationApproved, QuotationRejected:
		return true
	}
	return false
}

// Terminal indica si desde este estado no hay transición definida hacia fuera.
func (s QuotationState) Terminal() bool {
	return s == QuotationApproved || s == QuotationRejected
}

// QuotationItem línea de una cotización. Subtotal = Quantity × UnitPrice,
// siempre recalculado, nunca aceptado del caller.
type QuotationItem struct {
	ID          string
	QuotationID string
	Description string
	Quantity    int64
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}

// Quotation cotización con líneas y totales derivados.
type Quotation struct {
	ID           string
	Code         string
	Number       int64 // consecutivo por tipo de documento
	ClientID     string
	State        QuotationState
	Description  string
	Observations string
	ValidUntil   time.Time
	Items        []QuotationItem
	Subtotal     decimal.Decimal
	Tax          decimal.Decimal
	Total        decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RecalculateTotals recalcula subtotal por línea, subtotal general,
// IVA (19%) y total. Se invoca antes de cada persistencia que toque líneas.
func (q *Quotation) RecalculateTotals() {
	subtotal := decimal.Zero
	for i := range q.Items {
		item := &q.Items[i]
		item.Subtotal = decimal.NewFromInt(item.Quantity).Mul(item.UnitPrice)
		subtotal = subtotal.Add(item.Subtotal)
	}
	q.Subtotal = subtotal
	q.Tax = subtotal.Mul(IVARate)
	q.Total = subtotal.Add(q.Tax)
}
