package postgres

import (
	"context"
	"fmt"

	"github.com/Jawbreaker1989/queenscorner-api/internal/domain/repository"
)

var _ repository.SequenceRepository = (*SequenceRepo)(nil)

// SequenceRepo consecutivos de documentos sobre PostgreSQL. El upsert con
// RETURNING es atómico: dos transacciones concurrentes serializan en la fila
// (tipo, anio) y jamás reciben el mismo valor.
type SequenceRepo struct {
	q Querier
}

// NewSequenceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSequenceRepository(q Querier) *SequenceRepo {
	return &SequenceRepo{q: q}
}

const sequenceUpsert = `
	INSERT INTO consecutivos (tipo, anio, valor) VALUES ($1, $2, 1)
	ON CONFLICT (tipo, anio) DO UPDATE SET valor = consecutivos.valor + 1
	RETURNING valor`

// Next devuelve el siguiente consecutivo del tipo (sin partición por año).
func (r *SequenceRepo) Next(kind string) (int64, error) {
	return r.next(kind, 0)
}

// NextForYear devuelve el siguiente consecutivo del tipo dentro del año;
// cada año arranca en 1 (numeración de facturas).
func (r *SequenceRepo) NextForYear(kind string, year int) (int64, error) {
	return r.next(kind, year)
}

func (r *SequenceRepo) next(kind string, year int) (int64, error) {
	var value int64
	err := r.q.QueryRow(context.Background(), sequenceUpsert, kind, year).Scan(&value)
	if err != nil {
		return 0, fmt.Errorf("consecutivo %s/%d: %w", kind, year, err)
	}
	return value, nil
}
