package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Jawbreaker1989/queenscorner-api/internal/domain"
	"github.com/Jawbreaker1989/queenscorner-api/internal/domain/entity"
	"github.com/Jawbreaker1989/queenscorner-api/internal/domain/repository"
)

var _ repository.WorkOrderRepository = (*WorkOrderRepo)(nil)

// WorkOrderRepo implementación de WorkOrderRepository sobre PostgreSQL.
type WorkOrderRepo struct {
	q Querier
}

// NewWorkOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewWorkOrderRepository(q Querier) *WorkOrderRepo {
	return &WorkOrderRepo{q: q}
}

const workOrderColumns = `id, codigo, negocio_id, estado, prioridad, descripcion, observaciones,
		fecha_inicio_estimada, fecha_fin_estimada, fecha_entrega_real, created_at, updated_at`

func scanWorkOrder(row pgx.Row) (*entity.WorkOrder, error) {
	var o entity.WorkOrder
	err := row.Scan(
		&o.ID, &o.Code, &o.ProjectID, &o.State, &o.Priority, &o.Description, &o.Observations,
		&o.EstimatedStart, &o.EstimatedEnd, &o.DeliveredAt, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// Create persiste una orden de trabajo.
func (r *WorkOrderRepo) Create(o *entity.WorkOrder) error {
	query := `
		INSERT INTO ordenes_trabajo (` + workOrderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		o.ID, o.Code, o.ProjectID, o.State, o.Priority, o.Description, o.Observations,
		o.EstimatedStart, o.EstimatedEnd, o.DeliveredAt, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert orden: %w", err)
	}
	return nil
}

// GetByID obtiene una orden por ID.
func (r *WorkOrderRepo) GetByID(id string) (*entity.WorkOrder, error) {
	query := `SELECT ` + workOrderColumns + ` FROM ordenes_trabajo WHERE id = $1`
	o, err := scanWorkOrder(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get orden: %w", err)
	}
	return o, nil
}

// List lista órdenes con paginación.
func (r *WorkOrderRepo) List(limit, offset int) ([]*entity.WorkOrder, error) {
	query := `SELECT ` + workOrderColumns + ` FROM ordenes_trabajo ORDER BY created_at LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list ordenes: %w", err)
	}
	defer rows.Close()
	return collectWorkOrders(rows)
}

// ListByProject lista las órdenes de un negocio.
func (r *WorkOrderRepo) ListByProject(projectID string) ([]*entity.WorkOrder, error) {
	query := `SELECT ` + workOrderColumns + ` FROM ordenes_trabajo WHERE negocio_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, projectID)
	if err != nil {
		return nil, fmt.Errorf("list ordenes por negocio: %w", err)
	}
	defer rows.Close()
	return collectWorkOrders(rows)
}

func collectWorkOrders(rows pgx.Rows) ([]*entity.WorkOrder, error) {
	var list []*entity.WorkOrder
	for rows.Next() {
		o, err := scanWorkOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan orden: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

// Update actualiza estado, prioridad, fechas y observaciones.
func (r *WorkOrderRepo) Update(o *entity.WorkOrder) error {
	query := `
		UPDATE ordenes_trabajo SET estado = $2, prioridad = $3, descripcion = $4, observaciones = $5,
			fecha_inicio_estimada = $6, fecha_fin_estimada = $7, fecha_entrega_real = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		o.ID, o.State, o.Priority, o.Description, o.Observations,
		o.EstimatedStart, o.EstimatedEnd, o.DeliveredAt, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update orden: %w", err)
	}
	return nil
}

// Delete elimina una orden por ID.
func (r *WorkOrderRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM ordenes_trabajo WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete orden: %w", err)
	}
	return nil
}
