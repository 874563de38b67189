package tasks

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Jawbreaker1989/queenscorner-api/internal/application/ports"
	"github.com/Jawbreaker1989/queenscorner-api/pkg/logger"
)

func testPool(cfg Config) *Pool {
	return NewPool(cfg, logger.New(logger.Config{Env: "production", Level: "error"}))
}

func TestPool_EjecutaTareas(t *testing.T) {
	p := testPool(Config{Workers: 2, QueueDepth: 10, TaskTimeout: time.Second})
	p.Start()

	var done int32
	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		ok := p.Submit(ports.Task{Kind: "test", Run: func(ctx context.Context) error {
			defer wg.Done()
			atomic.AddInt32(&done, 1)
			return nil
		}})
		assert.True(t, ok)
	}
	wg.Wait()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	p.Stop(ctx)

	assert.Equal(t, int32(5), atomic.LoadInt32(&done))
}

func TestPool_ColaLlenaDescartaSinBloquear(t *testing.T) {
	p := testPool(Config{Workers: 1, QueueDepth: 1, TaskTimeout: time.Second})
	// Sin Start: nada consume, la cola se llena de inmediato.
	block := ports.Task{Kind: "bloqueada", Run: func(ctx context.Context) error { return nil }}

	assert.True(t, p.Submit(block))
	assert.False(t, p.Submit(block), "con la cola llena Submit debe retornar false sin bloquear")
}

func TestPool_ReintentaYSeRinde(t *testing.T) {
	p := testPool(Config{Workers: 1, QueueDepth: 10, TaskTimeout: time.Second, MaxRetries: 2})
	p.Start()

	var attempts int32
	var wg sync.WaitGroup
	wg.Add(3) // 1 intento + 2 reintentos
	p.Submit(ports.Task{Kind: "fallida", Run: func(ctx context.Context) error {
		defer wg.Done()
		atomic.AddInt32(&attempts, 1)
		return errors.New("fallo simulado")
	}})
	wg.Wait()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	p.Stop(ctx)

	assert.Equal(t, int32(3), atomic.LoadInt32(&attempts))
}

func TestPool_RecuperaPanico(t *testing.T) {
	p := testPool(Config{Workers: 1, QueueDepth: 10, TaskTimeout: time.Second})
	p.Start()

	var after int32
	var wg sync.WaitGroup
	wg.Add(1)
	p.Submit(ports.Task{Kind: "panico", Run: func(ctx context.Context) error {
		panic("boom")
	}})
	// Si el pánico tumbara el worker, esta segunda tarea jamás correría.
	p.Submit(ports.Task{Kind: "posterior", Run: func(ctx context.Context) error {
		defer wg.Done()
		atomic.AddInt32(&after, 1)
		return nil
	}})
	wg.Wait()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	p.Stop(ctx)

	assert.Equal(t, int32(1), atomic.LoadInt32(&after))
}

func TestPool_TimeoutPorTarea(t *testing.T) {
	p := testPool(Config{Workers: 1, QueueDepth: 10, TaskTimeout: 20 * time.Millisecond})
	p.Start()

	var sawDeadline int32
	var wg sync.WaitGroup
	wg.Add(1)
	p.Submit(ports.Task{Kind: "lenta", Run: func(ctx context.Context) error {
		defer wg.Done()
		select {
		case <-ctx.Done():
			atomic.AddInt32(&sawDeadline, 1)
			return ctx.Err()
		case <-time.After(time.Second):
			return nil
		}
	}})
	wg.Wait()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	p.Stop(ctx)

	assert.Equal(t, int32(1), atomic.LoadInt32(&sawDeadline))
}
