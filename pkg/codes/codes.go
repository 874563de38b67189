// Package codes genera códigos de documento únicos dentro del proceso
// (COT-, NEG-, OT-, FAC-). El sufijo combina el reloj con un contador
// monotónico, por lo que dos llamadas concurrentes nunca colisionan.
package codes

import (
	"fmt"
	"math/rand"
	"sync/atomic"
	"time"
)

var counter uint32 = rand.Uint32()

// New devuelve un código con el formato <PREFIX>-<unix_ms>-<4 hex>.
func New(prefix string) string {
	n := atomic.AddUint32(&counter, 1)
	return fmt.Sprintf("%s-%d-%04X", prefix, time.Now().UnixMilli(), n&0xFFFF)
}
