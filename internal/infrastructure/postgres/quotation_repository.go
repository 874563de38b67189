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

var _ repository.QuotationRepository = (*QuotationRepo)(nil)

// QuotationRepo implementación de QuotationRepository sobre PostgreSQL.
// Las líneas viven en cotizacion_items y siempre se leen/escriben junto
// con la cabecera.
type QuotationRepo struct {
	q Querier
}

// NewQuotationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewQuotationRepository(q Querier) *QuotationRepo {
	return &QuotationRepo{q: q}
}

const quotationColumns = `id, codigo, numero, cliente_id, estado, descripcion, observaciones,
		fecha_validez, subtotal, iva, total, created_at, updated_at`

// Create persiste la cotización con sus líneas.
func (r *QuotationRepo) Create(q *entity.Quotation) error {
	ctx := context.Background()
	query := `
		INSERT INTO cotizaciones (` + quotationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		q.ID, q.Code, q.Number, q.ClientID, q.State, q.Description, q.Observations,
		q.ValidUntil, q.Subtotal, q.Tax, q.Total, q.CreatedAt, q.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert cotizacion: %w", err)
	}
	return r.insertItems(ctx, q)
}

// GetByID obtiene la cotización con sus líneas.
func (r *QuotationRepo) GetByID(id string) (*entity.Quotation, error) {
	ctx := context.Background()
	query := `SELECT ` + quotationColumns + ` FROM cotizaciones WHERE id = $1`
	var q entity.Quotation
	err := r.q.QueryRow(ctx, query, id).Scan(
		&q.ID, &q.Code, &q.Number, &q.ClientID, &q.State, &q.Description, &q.Observations,
		&q.ValidUntil, &q.Subtotal, &q.Tax, &q.Total, &q.CreatedAt, &q.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cotizacion: %w", err)
	}
	if err := r.loadItems(ctx, &q); err != nil {
		return nil, err
	}
	return &q, nil
}

// List lista cotizaciones con sus líneas, paginado por consecutivo.
func (r *QuotationRepo) List(limit, offset int) ([]*entity.Quotation, error) {
	ctx := context.Background()
	query := `SELECT ` + quotationColumns + ` FROM cotizaciones ORDER BY numero LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list cotizaciones: %w", err)
	}
	defer rows.Close()
	var list []*entity.Quotation
	for rows.Next() {
		var q entity.Quotation
		if err := rows.Scan(
			&q.ID, &q.Code, &q.Number, &q.ClientID, &q.State, &q.Description, &q.Observations,
			&q.ValidUntil, &q.Subtotal, &q.Tax, &q.Total, &q.CreatedAt, &q.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan cotizacion: %w", err)
		}
		list = append(list, &q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, q := range list {
		if err := r.loadItems(ctx, q); err != nil {
			return nil, err
		}
	}
	return list, nil
}

// Update actualiza la cabecera y reemplaza las líneas completas.
func (r *QuotationRepo) Update(q *entity.Quotation) error {
	ctx := context.Background()
	query := `
		UPDATE cotizaciones SET estado = $2, descripcion = $3, observaciones = $4,
			fecha_validez = $5, subtotal = $6, iva = $7, total = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		q.ID, q.State, q.Description, q.Observations,
		q.ValidUntil, q.Subtotal, q.Tax, q.Total, q.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update cotizacion: %w", err)
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM cotizacion_items WHERE cotizacion_id = $1`, q.ID); err != nil {
		return fmt.Errorf("delete items cotizacion: %w", err)
	}
	return r.insertItems(ctx, q)
}

// Delete elimina la cotización; las líneas caen por ON DELETE CASCADE.
func (r *QuotationRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM cotizaciones WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete cotizacion: %w", err)
	}
	return nil
}

func (r *QuotationRepo) insertItems(ctx context.Context, q *entity.Quotation) error {
	query := `
		INSERT INTO cotizacion_items (id, cotizacion_id, descripcion, cantidad, precio_unitario, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6)`
	for _, it := range q.Items {
		if _, err := r.q.Exec(ctx, query,
			it.ID, q.ID, it.Description, it.Quantity, it.UnitPrice, it.Subtotal,
		); err != nil {
			return fmt.Errorf("insert item cotizacion: %w", err)
		}
	}
	return nil
}

func (r *QuotationRepo) loadItems(ctx context.Context, q *entity.Quotation) error {
	query := `
		SELECT id, cotizacion_id, descripcion, cantidad, precio_unitario, subtotal
		FROM cotizacion_items WHERE cotizacion_id = $1 ORDER BY id`
	rows, err := r.q.Query(ctx, query, q.ID)
	if err != nil {
		return fmt.Errorf("load items cotizacion: %w", err)
	}
	defer rows.Close()
	q.Items = nil
	for rows.Next() {
		var it entity.QuotationItem
		if err := rows.Scan(&it.ID, &it.QuotationID, &it.Description, &it.Quantity, &it.UnitPrice, &it.Subtotal); err != nil {
			return fmt.Errorf("scan item cotizacion: %w", err)
		}
		q.Items = append(q.Items, it)
	}
	return rows.Err()
}
