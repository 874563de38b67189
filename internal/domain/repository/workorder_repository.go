package repository

import "github.com/Jawbreaker1989/queenscorner-api/internal/domain/entity"

// WorkOrderRepository define el puerto de persistencia para WorkOrder.
type WorkOrderRepository interface {
	Create(o *entity.WorkOrder) error
	GetByID(id string) (*entity.WorkOrder, error)
	List(limit, offset int) ([]*entity.WorkOrder, error)
	ListByProject(projectID string) ([]*entity.WorkOrder, error)
	Update(o *entity.WorkOrder) error
	Delete(id string) error
}
