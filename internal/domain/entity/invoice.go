package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Estados de factura. El conjunto es abierto (el original los maneja como
// texto libre); estos son los valores con semántica propia. Solo la
// transición a ENVIADA lleva reglas: exige ≥1 línea y negocio asociado,
// y estampa fecha y usuario de envío.
const (
	InvoiceStatusEnviada    = "ENVIADA"
	InvoiceStatusEnRevision = "EN_REVISION"
	InvoiceStatusPagada     = "PAGADA"
)

// InvoiceLine línea de factura. LineNumber es 1-based, secuencial y sin
// huecos; Total = Quantity × UnitValue, siempre recalculado.
type InvoiceLine struct {
	ID          string
	InvoiceID   string
	LineNumber  int
	Description string
	Quantity    int64
	UnitValue   decimal.Decimal
	Total       decimal.Decimal
}

// Invoice factura emitida contra un negocio finalizado.
type Invoice struct {
	ID          string
	Code        string
	Number      string // FAC-<año>-<consecutivo de 6 dígitos>, único por año
	ProjectID   string
	QuotationID string // opcional: cotización de origen
	State       string
	Lines       []InvoiceLine
	Subtotal    decimal.Decimal
	IVA         decimal.Decimal
	Total       decimal.Decimal
	Advance     decimal.Decimal // copiado del negocio al crear
	Balance     decimal.Decimal // Total − Advance
	IssuedAt    time.Time
	SentAt      *time.Time
	CreatedBy   string
	SentBy      string
	PDFPath     string // lo escribe el renderizador de PDF después de crear
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RecalculateTotals renumera las líneas (1..n), recalcula el total por línea,
// el subtotal, el IVA (19%) y el saldo contra el anticipo.
func (f *Invoice) RecalculateTotals() {
	subtotal := decimal.Zero
	for i := range f.Lines {
		line := &f.Lines[i]
		line.LineNumber = i + 1
		line.Total = decimal.NewFromInt(line.Quantity).Mul(line.UnitValue)
		subtotal = subtotal.Add(line.Total)
	}
	f.Subtotal = subtotal
	f.IVA = subtotal.Mul(IVARate)
	f.Total = subtotal.Add(f.IVA)
	f.Balance = f.Total.Sub(f.Advance)
}

// FormatInvoiceNumber arma el número con el formato FAC-<año>-<seq:06d>.
func FormatInvoiceNumber(year int, seq int64) string {
	return fmt.Sprintf("FAC-%d-%06d", year, seq)
}
