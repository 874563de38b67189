package repository

import "github.com/Jawbreaker1989/queenscorner-api/internal/domain/entity"

// QuotationRepository define el puerto de persistencia para Quotation y sus líneas.
// Las líneas pertenecen en exclusiva a la cotización: Delete las elimina en cascada.
type QuotationRepository interface {
	Create(q *entity.Quotation) error
	GetByID(id string) (*entity.Quotation, error) // incluye líneas
	List(limit, offset int) ([]*entity.Quotation, error)
	// Update persiste cabecera y reemplaza las líneas por las actuales.
	Update(q *entity.Quotation) error
	Delete(id string) error // hard delete, cascada a líneas
}
