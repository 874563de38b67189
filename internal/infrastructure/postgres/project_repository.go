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

var _ repository.ProjectRepository = (*ProjectRepo)(nil)

// ProjectRepo implementación de ProjectRepository sobre PostgreSQL.
// Los campos cot_* son el snapshot de la cotización tomado al convertir.
type ProjectRepo struct {
	q Querier
}

// NewProjectRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProjectRepository(q Querier) *ProjectRepo {
	return &ProjectRepo{q: q}
}

const projectColumns = `id, codigo, cotizacion_id, estado,
		cot_codigo, cot_estado, cot_fecha, cot_descripcion, cot_observaciones,
		cot_subtotal, cot_iva, cot_total,
		presupuesto, anticipo, saldo, fecha_inicio_estimada, fecha_entrega_estimada,
		responsable, observaciones, created_at, updated_at`

func scanProject(row pgx.Row) (*entity.Project, error) {
	var p entity.Project
	err := row.Scan(
		&p.ID, &p.Code, &p.QuotationID, &p.State,
		&p.QuotationCode, &p.QuotationState, &p.QuotationDate, &p.QuotationDescription, &p.QuotationObservations,
		&p.QuotationSubtotal, &p.QuotationTax, &p.QuotationTotal,
		&p.Budget, &p.Advance, &p.Balance, &p.EstimatedStart, &p.EstimatedEnd,
		&p.Responsible, &p.Observations, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste el negocio. La unicidad cotizacion_id garantiza un solo
// negocio por cotización incluso ante conversiones concurrentes.
func (r *ProjectRepo) Create(p *entity.Project) error {
	query := `
		INSERT INTO negocios (` + projectColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Code, p.QuotationID, p.State,
		p.QuotationCode, p.QuotationState, p.QuotationDate, p.QuotationDescription, p.QuotationObservations,
		p.QuotationSubtotal, p.QuotationTax, p.QuotationTotal,
		p.Budget, p.Advance, p.Balance, p.EstimatedStart, p.EstimatedEnd,
		p.Responsible, p.Observations, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert negocio: %w", err)
	}
	return nil
}

// GetByID obtiene un negocio por ID.
func (r *ProjectRepo) GetByID(id string) (*entity.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM negocios WHERE id = $1`
	p, err := scanProject(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get negocio: %w", err)
	}
	return p, nil
}

// GetByQuotationID obtiene el negocio asociado a una cotización, si existe.
func (r *ProjectRepo) GetByQuotationID(quotationID string) (*entity.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM negocios WHERE cotizacion_id = $1`
	p, err := scanProject(r.q.QueryRow(context.Background(), query, quotationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get negocio por cotizacion: %w", err)
	}
	return p, nil
}

// List lista negocios con paginación.
func (r *ProjectRepo) List(limit, offset int) ([]*entity.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM negocios ORDER BY created_at LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list negocios: %w", err)
	}
	defer rows.Close()
	var list []*entity.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan negocio: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Update actualiza estado y campos editables (no el snapshot ni el anticipo).
func (r *ProjectRepo) Update(p *entity.Project) error {
	query := `
		UPDATE negocios SET estado = $2, presupuesto = $3,
			fecha_inicio_estimada = $4, fecha_entrega_estimada = $5,
			responsable = $6, observaciones = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.State, p.Budget, p.EstimatedStart, p.EstimatedEnd,
		p.Responsible, p.Observations, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update negocio: %w", err)
	}
	return nil
}

// RecalculateAdvance fija anticipo = Σ pagos vigentes y saldo = total − anticipo
// en una sola sentencia, de modo que escritores concurrentes serialicen en la
// fila del negocio y el resultado nunca dependa de lecturas previas.
func (r *ProjectRepo) RecalculateAdvance(projectID string) error {
	query := `
		UPDATE negocios SET
			anticipo = COALESCE((SELECT SUM(monto) FROM pagos WHERE negocio_id = $1), 0),
			saldo = cot_total - COALESCE((SELECT SUM(monto) FROM pagos WHERE negocio_id = $1), 0),
			updated_at = NOW()
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, projectID)
	if err != nil {
		return fmt.Errorf("recalcular anticipo: %w", err)
	}
	return nil
}
