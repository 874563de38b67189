package ports

// Regiones del caché de lectura, una por tipo de entidad.
const (
	CacheRegionClients    = "clientes"
	CacheRegionQuotations = "cotizaciones"
	CacheRegionProjects   = "negocios"
	CacheRegionInvoices   = "facturas"
)

// ReadCache define el puerto del caché de lectura en memoria que antecede
// a los listados y detalles. Toda operación mutadora debe invalidar la
// región completa de su entidad de forma síncrona antes de responder, para
// no servir agregados obsoletos.
type ReadCache interface {
	Get(region, key string) (any, bool)
	Set(region, key string, value any)
	InvalidateRegion(region string)
	InvalidateAll()
}
