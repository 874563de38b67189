package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Jawbreaker1989/queenscorner-api/internal/domain/entity"
)

// CreateProjectRequest body para POST /api/negocios: conversión de una
// cotización APPROVED en negocio, con ajustes opcionales del caller.
type CreateProjectRequest struct {
	QuotationID    string          `json:"cotizacionId"`
	Budget         decimal.Decimal `json:"presupuesto,omitempty"`
	Advance        decimal.Decimal `json:"anticipo,omitempty"`
	EstimatedStart *time.Time      `json:"fechaInicioEstimada,omitempty"`
	EstimatedEnd   *time.Time      `json:"fechaEntregaEstimada,omitempty"`
	Responsible    string          `json:"responsable,omitempty"`
	Observations   string          `json:"observaciones,omitempty"`
}

// UpdateProjectRequest body para PUT /api/negocios/:id. El anticipo no se
// edita por aquí: lo mantiene el libro de pagos.
type UpdateProjectRequest struct {
	Budget         *decimal.Decimal `json:"presupuesto,omitempty"`
	EstimatedStart *time.Time       `json:"fechaInicioEstimada,omitempty"`
	EstimatedEnd   *time.Time       `json:"fechaEntregaEstimada,omitempty"`
	Responsible    *string          `json:"responsable,omitempty"`
	Observations   *string          `json:"observaciones,omitempty"`
}

// ProjectResponse negocio con el snapshot de la cotización y los saldos.
type ProjectResponse struct {
	ID                    string          `json:"id"`
	Code                  string          `json:"codigo"`
	QuotationID           string          `json:"cotizacionId"`
	State                 string          `json:"estado"`
	QuotationCode         string          `json:"codigoCotizacion"`
	QuotationState        string          `json:"estadoCotizacion"`
	QuotationDate         time.Time       `json:"fechaCotizacion"`
	QuotationDescription  string          `json:"descripcionCotizacion"`
	QuotationObservations string          `json:"observacionesCotizacion,omitempty"`
	QuotationSubtotal     decimal.Decimal `json:"subtotalCotizacion"`
	QuotationTax          decimal.Decimal `json:"ivaCotizacion"`
	QuotationTotal        decimal.Decimal `json:"totalCotizacion"`
	Budget                decimal.Decimal `json:"presupuesto"`
	Advance               decimal.Decimal `json:"anticipo"`
	Balance               decimal.Decimal `json:"saldo"`
	EstimatedStart        time.Time       `json:"fechaInicioEstimada"`
	EstimatedEnd          time.Time       `json:"fechaEntregaEstimada"`
	Responsible           string          `json:"responsable,omitempty"`
	Observations          string          `json:"observaciones,omitempty"`
	CreatedAt             time.Time       `json:"fechaCreacion"`
	UpdatedAt             time.Time       `json:"fechaActualizacion"`
}

// ToProjectResponse convierte la entidad a su representación de API.
func ToProjectResponse(p *entity.Project) *ProjectResponse {
	if p == nil {
		return nil
	}
	return &ProjectResponse{
		ID:                    p.ID,
		Code:                  p.Code,
		QuotationID:           p.QuotationID,
		State:                 string(p.State),
		QuotationCode:         p.QuotationCode,
		QuotationState:        string(p.QuotationState),
		QuotationDate:         p.QuotationDate,
		QuotationDescription:  p.QuotationDescription,
		QuotationObservations: p.QuotationObservations,
		QuotationSubtotal:     p.QuotationSubtotal,
		QuotationTax:          p.QuotationTax,
		QuotationTotal:        p.QuotationTotal,
		Budget:                p.Budget,
		Advance:               p.Advance,
		Balance:               p.Balance,
		EstimatedStart:        p.EstimatedStart,
		EstimatedEnd:          p.EstimatedEnd,
		Responsible:           p.Responsible,
		Observations:          p.Observations,
		CreatedAt:             p.CreatedAt,
		UpdatedAt:             p.UpdatedAt,
	}
}
