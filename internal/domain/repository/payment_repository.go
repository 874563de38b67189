package repository

import "github.com/Jawbreaker1989/queenscorner-api/internal/domain/entity"

// PaymentRepository define el puerto de persistencia para Payment.
// Los pagos son inmutables: no hay Update, solo Create y Delete.
type PaymentRepository interface {
	Create(p *entity.Payment) error
	GetByID(id string) (*entity.Payment, error)
	ListByProject(projectID string) ([]*entity.Payment, error)
	Delete(id string) error
}
