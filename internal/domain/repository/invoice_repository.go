package repository

import "github.com/Jawbreaker1989/queenscorner-api/internal/domain/entity"

// InvoiceRepository define el puerto de persistencia para Invoice y sus líneas.
// Las líneas pertenecen en exclusiva a la factura (cascada en el borrado).
type InvoiceRepository interface {
	Create(f *entity.Invoice) error
	GetByID(id string) (*entity.Invoice, error) // incluye líneas
	List(limit, offset int) ([]*entity.Invoice, error)
	// Update persiste cabecera y reemplaza las líneas por las actuales.
	Update(f *entity.Invoice) error
	// UpdatePDFPath registra la ruta del PDF generado (lo llama el worker).
	UpdatePDFPath(id, path string) error
}
