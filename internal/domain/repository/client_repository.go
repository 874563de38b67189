package repository

import "github.com/Jawbreaker1989/queenscorner-api/internal/domain/entity"

// ClientRepository define el puerto de persistencia para Client.
// Delete es lógico: marca Active=false, nunca elimina la fila.
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	List(onlyActive bool, limit, offset int) ([]*entity.Client, error)
	Update(client *entity.Client) error
	Deactivate(id string) error
}
