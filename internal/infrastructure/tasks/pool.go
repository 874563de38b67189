// Package tasks implementa el pool acotado de trabajo en segundo plano que
// consume las tareas fire-and-forget (notificaciones, PDFs). El request que
// encola retorna de inmediato con su escritura ya confirmada; las tareas no
// ofrecen garantía de orden frente a lecturas posteriores.
package tasks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Jawbreaker1989/queenscorner-api/internal/application/ports"
	"github.com/Jawbreaker1989/queenscorner-api/pkg/logger"
)

// Config parámetros del pool.
type Config struct {
	Workers     int           // goroutines consumidoras
	QueueDepth  int           // buffer de la cola; llena => Submit retorna false
	TaskTimeout time.Duration // tope por intento; vencerlo es fallo no fatal
	MaxRetries  int           // reintentos tras el primer fallo
}

// Pool pool de workers con cola acotada, reintentos y recuperación de pánicos.
type Pool struct {
	cfg   Config
	queue chan ports.Task
	log   *logger.Logger
	wg    sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

var _ ports.TaskSubmitter = (*Pool)(nil)

// NewPool construye el pool; llamar Start antes de encolar.
func NewPool(cfg Config, log *logger.Logger) *Pool {
	if cfg.Workers <= 0 {
		cfg.Workers = 5
	}
	if cfg.QueueDepth <= 0 {
		cfg.QueueDepth = 100
	}
	if cfg.TaskTimeout <= 0 {
		cfg.TaskTimeout = 10 * time.Second
	}
	return &Pool{
		cfg:   cfg,
		queue: make(chan ports.Task, cfg.QueueDepth),
		log:   log,
	}
}

// Start lanza los workers.
func (p *Pool) Start() {
	for i := 0; i < p.cfg.Workers; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}
}

// Submit encola una tarea sin bloquear. Retorna false si la cola está llena
// o el pool ya fue detenido; el descarte se registra y no se propaga.
func (p *Pool) Submit(t ports.Task) bool {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		p.log.Warn().Str("tarea", t.Kind).Msg("pool detenido, tarea descartada")
		return false
	}
	select {
	case p.queue <- t:
		p.mu.Unlock()
		return true
	default:
		p.mu.Unlock()
		p.log.Warn().Str("tarea", t.Kind).Msg("cola llena, tarea descartada")
		return false
	}
}

// Stop cierra la cola y espera a que los workers drenen lo pendiente o el
// contexto expire.
func (p *Pool) Stop(ctx context.Context) {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.queue)
	}
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		p.log.Warn().Msg("apagado del pool con tareas pendientes")
	}
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()
	for t := range p.queue {
		p.execute(id, t)
	}
}

// execute corre la tarea con timeout y reintentos acotados. Los fallos se
// registran de forma estructurada y nunca se propagan al request que encoló.
func (p *Pool) execute(worker int, t ports.Task) {
	var err error
	for attempt := 0; attempt <= p.cfg.MaxRetries; attempt++ {
		err = p.runOnce(t)
		if err == nil {
			return
		}
		p.log.Warn().
			Int("worker", worker).
			Str("tarea", t.Kind).
			Int("intento", attempt+1).
			Err(err).
			Msg("tarea en segundo plano falló")
	}
	p.log.Error().
		Int("worker", worker).
		Str("tarea", t.Kind).
		Err(err).
		Msg("tarea agotó sus reintentos")
}

func (p *Pool) runOnce(t ports.Task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pánico en tarea: %v", r)
		}
	}()
	ctx, cancel := context.WithTimeout(context.Background(), p.cfg.TaskTimeout)
	defer cancel()
	return t.Run(ctx)
}
