// Package cache implementa el caché de lectura en memoria: entradas con TTL
// fijo agrupadas por región (una región por tipo de entidad), con
// invalidación de región completa en cada mutación.
package cache

import (
	"sync"
	"time"
)

type entry struct {
	value     any
	expiresAt time.Time
}

// Regional caché en memoria acotado: TTL fijo por entrada y tope de entradas
// por región. Al alcanzar el tope la región se vacía; es un caché de lectura,
// perder entradas solo cuesta una consulta.
type Regional struct {
	mu         sync.RWMutex
	regions    map[string]map[string]entry
	ttl        time.Duration
	maxEntries int
}

// NewRegional construye el caché con el TTL y el tope por región dados.
func NewRegional(ttl time.Duration, maxEntries int) *Regional {
	if maxEntries <= 0 {
		maxEntries = 500
	}
	return &Regional{
		regions:    make(map[string]map[string]entry),
		ttl:        ttl,
		maxEntries: maxEntries,
	}
}

// Get devuelve el valor si existe y no ha expirado.
func (c *Regional) Get(region, key string) (any, bool) {
	c.mu.RLock()
	r, ok := c.regions[region]
	if !ok {
		c.mu.RUnlock()
		return nil, false
	}
	e, ok := r[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		c.mu.Lock()
		if r, ok := c.regions[region]; ok {
			delete(r, key)
		}
		c.mu.Unlock()
		return nil, false
	}
	return e.value, true
}

// Set guarda el valor con el TTL configurado.
func (c *Regional) Set(region, key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	r, ok := c.regions[region]
	if !ok {
		r = make(map[string]entry)
		c.regions[region] = r
	}
	if len(r) >= c.maxEntries {
		r = make(map[string]entry)
		c.regions[region] = r
	}
	r[key] = entry{value: value, expiresAt: time.Now().Add(c.ttl)}
}

// InvalidateRegion descarta todas las entradas de la región.
func (c *Regional) InvalidateRegion(region string) {
	c.mu.Lock()
	delete(c.regions, region)
	c.mu.Unlock()
}

// InvalidateAll descarta todas las regiones (clean-data).
func (c *Regional) InvalidateAll() {
	c.mu.Lock()
	c.regions = make(map[string]map[string]entry)
	c.mu.Unlock()
}
