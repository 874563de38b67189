package repository

import "github.com/Jawbreaker1989/queenscorner-api/internal/domain/entity"

// ProjectRepository define el puerto de persistencia para Project (negocio).
type ProjectRepository interface {
	Create(p *entity.Project) error
	GetByID(id string) (*entity.Project, error)
	// GetByQuotationID soporta la regla de máximo un negocio por cotización.
	GetByQuotationID(quotationID string) (*entity.Project, error)
	List(limit, offset int) ([]*entity.Project, error)
	Update(p *entity.Project) error
	// RecalculateAdvance deriva advance = Σ pagos y balance = total − advance
	// en una sola sentencia atómica sobre la fila del negocio (evita lost
	// updates bajo pagos concurrentes).
	RecalculateAdvance(projectID string) error
}
