package repository

// EntityCounts conteos por entidad para el endpoint de estadísticas.
type EntityCounts struct {
	Clients    int64
	Quotations int64
	Projects   int64
	WorkOrders int64
	Invoices   int64
	Payments   int64
}

// AdminRepository operaciones administrativas de demo/reset.
type AdminRepository interface {
	// CleanData trunca todas las tablas de negocio (y reinicia consecutivos)
	// excepto la de usuarios.
	CleanData() error
	Stats() (*EntityCounts, error)
}
