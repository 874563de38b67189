package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod medio de pago.
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "CASH"
	PaymentCard     PaymentMethod = "CARD"
	PaymentTransfer PaymentMethod = "TRANSFER"
	PaymentCheque   PaymentMethod = "CHEQUE"
)

// Valid indica si el medio de pago pertenece al conjunto cerrado.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentTransfer, PaymentCheque:
		return true
	}
	return false
}

// Payment abono registrado contra un negocio. Inmutable una vez creado;
// la única mutación es el borrado, que obliga a recalcular el anticipo
// del negocio.
type Payment struct {
	ID           string
	ProjectID    string
	Amount       decimal.Decimal // estrictamente positivo
	Method       PaymentMethod
	Reference    string
	Observations string
	PaidAt       time.Time
	CreatedAt    time.Time
}
