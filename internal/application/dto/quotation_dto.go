package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Jawbreaker1989/queenscorner-api/internal/domain/entity"
)

// QuotationItemRequest línea de cotización en el request.
type QuotationItemRequest struct {
	Description string          `json:"descripcion"`
	Quantity    int64           `json:"cantidad"`
	UnitPrice   decimal.Decimal `json:"precioUnitario"`
}

// CreateQuotationRequest body para POST /api/cotizaciones.
// ValidUntil, Description e Items son opcionales: se aplican defaults
// (fecha +30 días, "Custom service", ítem sintético de cantidad 1).
type CreateQuotationRequest struct {
	ClientID     string                 `json:"clienteId"`
	ValidUntil   *time.Time             `json:"fechaValidez,omitempty"`
	Description  string                 `json:"descripcion,omitempty"`
	Observations string                 `json:"observaciones,omitempty"`
	Items        []QuotationItemRequest `json:"items,omitempty"`
}

// UpdateQuotationRequest body para PUT /api/cotizaciones/:id.
// Solo fecha de validez, descripción y observaciones son mutables por esta vía;
// las líneas y los totales no se tocan aquí.
type UpdateQuotationRequest struct {
	ValidUntil   *time.Time `json:"fechaValidez,omitempty"`
	Description  *string    `json:"descripcion,omitempty"`
	Observations *string    `json:"observaciones,omitempty"`
}

// QuotationItemResponse línea de cotización en respuestas.
type QuotationItemResponse struct {
	ID          string          `json:"id"`
	Description string          `json:"descripcion"`
	Quantity    int64           `json:"cantidad"`
	UnitPrice   decimal.Decimal `json:"precioUnitario"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// QuotationResponse cotización con cliente embebido y totales derivados.
type QuotationResponse struct {
	ID           string                  `json:"id"`
	Code         string                  `json:"codigo"`
	Number       int64                   `json:"numero"`
	State        string                  `json:"estado"`
	Description  string                  `json:"descripcion"`
	Observations string                  `json:"observaciones,omitempty"`
	ValidUntil   time.Time               `json:"fechaValidez"`
	Client       *ClientResponse         `json:"cliente,omitempty"`
	Items        []QuotationItemResponse `json:"items"`
	Subtotal     decimal.Decimal         `json:"subtotal"`
	Tax          decimal.Decimal         `json:"iva"`
	Total        decimal.Decimal         `json:"total"`
	CreatedAt    time.Time               `json:"fechaCreacion"`
}

// ToQuotationResponse convierte la entidad (y opcionalmente su cliente) a la
// representación de API.
func ToQuotationResponse(q *entity.Quotation, client *entity.Client) *QuotationResponse {
	if q == nil {
		return nil
	}
	items := make([]QuotationItemResponse, 0, len(q.Items))
	for _, it := range q.Items {
		items = append(items, QuotationItemResponse{
			ID:          it.ID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Subtotal:    it.Subtotal,
		})
	}
	return &QuotationResponse{
		ID:           q.ID,
		Code:         q.Code,
		Number:       q.Number,
		State:        string(q.State),
		Description:  q.Description,
		Observations: q.Observations,
		ValidUntil:   q.ValidUntil,
		Client:       ToClientResponse(client),
		Items:        items,
		Subtotal:     q.Subtotal,
		Tax:          q.Tax,
		Total:        q.Total,
		CreatedAt:    q.CreatedAt,
	}
}
