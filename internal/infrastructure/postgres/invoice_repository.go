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

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository sobre PostgreSQL.
// El índice único sobre numero respalda la numeración FAC-<año>-<seq>.
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

const invoiceColumns = `id, codigo, numero, negocio_id, cotizacion_id, estado,
		subtotal, iva, total, anticipo, saldo, fecha_emision, fecha_envio,
		usuario_creacion, usuario_envio, ruta_pdf, created_at, updated_at`

func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var f entity.Invoice
	err := row.Scan(
		&f.ID, &f.Code, &f.Number, &f.ProjectID, &f.QuotationID, &f.State,
		&f.Subtotal, &f.IVA, &f.Total, &f.Advance, &f.Balance, &f.IssuedAt, &f.SentAt,
		&f.CreatedBy, &f.SentBy, &f.PDFPath, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// Create persiste la factura con sus líneas.
func (r *InvoiceRepo) Create(f *entity.Invoice) error {
	ctx := context.Background()
	query := `
		INSERT INTO facturas (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err := r.q.Exec(ctx, query,
		f.ID, f.Code, f.Number, f.ProjectID, f.QuotationID, f.State,
		f.Subtotal, f.IVA, f.Total, f.Advance, f.Balance, f.IssuedAt, f.SentAt,
		f.CreatedBy, f.SentBy, f.PDFPath, f.CreatedAt, f.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert factura: %w", err)
	}
	return r.insertLines(ctx, f)
}

// GetByID obtiene la factura con sus líneas.
func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	ctx := context.Background()
	query := `SELECT ` + invoiceColumns + ` FROM facturas WHERE id = $1`
	f, err := scanInvoice(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get factura: %w", err)
	}
	if err := r.loadLines(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

// List lista facturas con sus líneas, ordenadas por número.
func (r *InvoiceRepo) List(limit, offset int) ([]*entity.Invoice, error) {
	ctx := context.Background()
	query := `SELECT ` + invoiceColumns + ` FROM facturas ORDER BY numero LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list facturas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		f, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan factura: %w", err)
		}
		list = append(list, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, f := range list {
		if err := r.loadLines(ctx, f); err != nil {
			return nil, err
		}
	}
	return list, nil
}

// Update actualiza estado, totales y datos de envío; reemplaza las líneas.
func (r *InvoiceRepo) Update(f *entity.Invoice) error {
	ctx := context.Background()
	query := `
		UPDATE facturas SET estado = $2, subtotal = $3, iva = $4, total = $5,
			anticipo = $6, saldo = $7, fecha_envio = $8, usuario_envio = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		f.ID, f.State, f.Subtotal, f.IVA, f.Total,
		f.Advance, f.Balance, f.SentAt, f.SentBy, f.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update factura: %w", err)
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM factura_lineas WHERE factura_id = $1`, f.ID); err != nil {
		return fmt.Errorf("delete lineas factura: %w", err)
	}
	return r.insertLines(ctx, f)
}

// UpdatePDFPath registra la ruta del PDF generado en segundo plano.
func (r *InvoiceRepo) UpdatePDFPath(id, path string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE facturas SET ruta_pdf = $2, updated_at = NOW() WHERE id = $1`, id, path)
	if err != nil {
		return fmt.Errorf("update ruta pdf: %w", err)
	}
	return nil
}

func (r *InvoiceRepo) insertLines(ctx context.Context, f *entity.Invoice) error {
	query := `
		INSERT INTO factura_lineas (id, factura_id, numero_linea, descripcion, cantidad, valor_unitario, total_linea)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	for _, l := range f.Lines {
		if _, err := r.q.Exec(ctx, query,
			l.ID, f.ID, l.LineNumber, l.Description, l.Quantity, l.UnitValue, l.Total,
		); err != nil {
			return fmt.Errorf("insert linea factura: %w", err)
		}
	}
	return nil
}

func (r *InvoiceRepo) loadLines(ctx context.Context, f *entity.Invoice) error {
	query := `
		SELECT id, factura_id, numero_linea, descripcion, cantidad, valor_unitario, total_linea
		FROM factura_lineas WHERE factura_id = $1 ORDER BY numero_linea`
	rows, err := r.q.Query(ctx, query, f.ID)
	if err != nil {
		return fmt.Errorf("load lineas factura: %w", err)
	}
	defer rows.Close()
	f.Lines = nil
	for rows.Next() {
		var l entity.InvoiceLine
		if err := rows.Scan(&l.ID, &l.InvoiceID, &l.LineNumber, &l.Description, &l.Quantity, &l.UnitValue, &l.Total); err != nil {
			return fmt.Errorf("scan linea factura: %w", err)
		}
		f.Lines = append(f.Lines, l)
	}
	return rows.Err()
}
