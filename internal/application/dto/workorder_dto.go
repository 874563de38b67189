package dto

import (
	"time"

	"github.com/Jawbreaker1989/queenscorner-api/internal/domain/entity"
)

// CreateWorkOrderRequest body para POST /api/ordenes-trabajo. Todos los
// campos salvo el negocio son opcionales; los defaults los aplica el caso de uso.
type CreateWorkOrderRequest struct {
	ProjectID      string     `json:"negocioId"`
	Description    string     `json:"descripcion,omitempty"`
	Priority       string     `json:"prioridad,omitempty"`
	EstimatedStart *time.Time `json:"fechaInicioEstimada,omitempty"`
	EstimatedEnd   *time.Time `json:"fechaFinEstimada,omitempty"`
	Observations   string     `json:"observaciones,omitempty"`
}

// UpdateWorkOrderRequest body para PUT /api/ordenes-trabajo/:id.
type UpdateWorkOrderRequest struct {
	Description    *string    `json:"descripcion,omitempty"`
	Priority       *string    `json:"prioridad,omitempty"`
	EstimatedStart *time.Time `json:"fechaInicioEstimada,omitempty"`
	EstimatedEnd   *time.Time `json:"fechaFinEstimada,omitempty"`
	Observations   *string    `json:"observaciones,omitempty"`
}

// WorkOrderResponse orden de trabajo en respuestas.
type WorkOrderResponse struct {
	ID             string     `json:"id"`
	Code           string     `json:"codigo"`
	ProjectID      string     `json:"negocioId"`
	State          string     `json:"estado"`
	Priority       string     `json:"prioridad"`
	Description    string     `json:"descripcion"`
	Observations   string     `json:"observaciones,omitempty"`
	EstimatedStart time.Time  `json:"fechaInicioEstimada"`
	EstimatedEnd   time.Time  `json:"fechaFinEstimada"`
	DeliveredAt    *time.Time `json:"fechaEntregaReal,omitempty"`
	CreatedAt      time.Time  `json:"fechaCreacion"`
}

// ToWorkOrderResponse convierte la entidad a su representación de API.
func ToWorkOrderResponse(o *entity.WorkOrder) *WorkOrderResponse {
	if o == nil {
		return nil
	}
	return &WorkOrderResponse{
		ID:             o.ID,
		Code:           o.Code,
		ProjectID:      o.ProjectID,
		State:          string(o.State),
		Priority:       string(o.Priority),
		Description:    o.Description,
		Observations:   o.Observations,
		EstimatedStart: o.EstimatedStart,
		EstimatedEnd:   o.EstimatedEnd,
		DeliveredAt:    o.DeliveredAt,
		CreatedAt:      o.CreatedAt,
	}
}
