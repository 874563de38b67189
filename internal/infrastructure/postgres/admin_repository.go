package postgres

import (
	"context"
	"fmt"

	"github.com/Jawbreaker1989/queenscorner-api/internal/domain/repository"
)

var _ repository.AdminRepository = (*AdminRepo)(nil)

// AdminRepo operaciones administrativas de demo/reset sobre PostgreSQL.
type AdminRepo struct {
	q Querier
}

// NewAdminRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAdminRepository(q Querier) *AdminRepo {
	return &AdminRepo{q: q}
}

// CleanData vacía todas las tablas de negocio excepto usuarios y reinicia
// los consecutivos. TRUNCATE con CASCADE respeta las FKs entre tablas.
func (r *AdminRepo) CleanData() error {
	query := `
		TRUNCATE pagos, factura_lineas, facturas, ordenes_trabajo, negocios,
			cotizacion_items, cotizaciones, clientes, consecutivos CASCADE`
	if _, err := r.q.Exec(context.Background(), query); err != nil {
		return fmt.Errorf("clean data: %w", err)
	}
	return nil
}

// Stats devuelve los conteos por entidad en una sola pasada.
func (r *AdminRepo) Stats() (*repository.EntityCounts, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM clientes),
			(SELECT COUNT(*) FROM cotizaciones),
			(SELECT COUNT(*) FROM negocios),
			(SELECT COUNT(*) FROM ordenes_trabajo),
			(SELECT COUNT(*) FROM facturas),
			(SELECT COUNT(*) FROM pagos)`
	var counts repository.EntityCounts
	err := r.q.QueryRow(context.Background(), query).Scan(
		&counts.Clients, &counts.Quotations, &counts.Projects,
		&counts.WorkOrders, &counts.Invoices, &counts.Payments,
	)
	if err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}
	return &counts, nil
}
