package repository

// SequenceRepository entrega consecutivos de documento. Las implementaciones
// deben garantizar que dos llamadas concurrentes nunca reciban el mismo valor
// (upsert atómico en PostgreSQL, mutex en memoria).
type SequenceRepository interface {
	// Next consecutivo global por tipo de documento (ej. "COT").
	Next(kind string) (int64, error)
	// NextForYear consecutivo por tipo y año; lo usa la numeración de
	// facturas FAC-<año>-<seq>.
	NextForYear(kind string, year int) (int64, error)
}
