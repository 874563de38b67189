package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Jawbreaker1989/queenscorner-api/internal/domain/entity"
)

// InvoiceLineRequest línea explícita de factura en el request.
type InvoiceLineRequest struct {
	Description string          `json:"descripcion"`
	Quantity    int64           `json:"cantidad"`
	UnitValue   decimal.Decimal `json:"valorUnitario"`
}

// CreateInvoiceRequest body para POST /api/facturas. Si Lines va vacío, la
// factura se siembra con una única línea construida desde el total del negocio.
type CreateInvoiceRequest struct {
	ProjectID string               `json:"negocioId"`
	Lines     []InvoiceLineRequest `json:"lineas,omitempty"`
}

// InvoiceLineResponse línea de factura en respuestas.
type InvoiceLineResponse struct {
	ID          string          `json:"id"`
	LineNumber  int             `json:"numeroLinea"`
	Description string          `json:"descripcion"`
	Quantity    int64           `json:"cantidad"`
	UnitValue   decimal.Decimal `json:"valorUnitario"`
	Total       decimal.Decimal `json:"totalLinea"`
}

// InvoiceResponse factura con líneas y saldos.
type InvoiceResponse struct {
	ID          string                `json:"id"`
	Code        string                `json:"codigo"`
	Number      string                `json:"numeroFactura"`
	ProjectID   string                `json:"negocioId"`
	QuotationID string                `json:"cotizacionId,omitempty"`
	State       string                `json:"estado"`
	Lines       []InvoiceLineResponse `json:"lineas"`
	Subtotal    decimal.Decimal       `json:"subtotal"`
	IVA         decimal.Decimal       `json:"iva"`
	Total       decimal.Decimal       `json:"total"`
	Advance     decimal.Decimal       `json:"anticipo"`
	Balance     decimal.Decimal       `json:"saldo"`
	IssuedAt    time.Time             `json:"fechaEmision"`
	SentAt      *time.Time            `json:"fechaEnvio,omitempty"`
	CreatedBy   string                `json:"usuarioCreacion,omitempty"`
	SentBy      string                `json:"usuarioEnvio,omitempty"`
	PDFPath     string                `json:"rutaPdf,omitempty"`
	CreatedAt   time.Time             `json:"fechaCreacion"`
}

// ToInvoiceResponse convierte la entidad a su representación de API.
func ToInvoiceResponse(f *entity.Invoice) *InvoiceResponse {
	if f == nil {
		return nil
	}
	lines := make([]InvoiceLineResponse, 0, len(f.Lines))
	for _, l := range f.Lines {
		lines = append(lines, InvoiceLineResponse{
			ID:          l.ID,
			LineNumber:  l.LineNumber,
			Description: l.Description,
			Quantity:    l.Quantity,
			UnitValue:   l.UnitValue,
			Total:       l.Total,
		})
	}
	return &InvoiceResponse{
		ID:          f.ID,
		Code:        f.Code,
		Number:      f.Number,
		ProjectID:   f.ProjectID,
		QuotationID: f.QuotationID,
		State:       f.State,
		Lines:       lines,
		Subtotal:    f.Subtotal,
		IVA:         f.IVA,
		Total:       f.Total,
		Advance:     f.Advance,
		Balance:     f.Balance,
		IssuedAt:    f.IssuedAt,
		SentAt:      f.SentAt,
		CreatedBy:   f.CreatedBy,
		SentBy:      f.SentBy,
		PDFPath:     f.PDFPath,
		CreatedAt:   f.CreatedAt,
	}
}
