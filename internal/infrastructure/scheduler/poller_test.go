package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoller_EjecutaDeInmediatoYPeriodicamente(t *testing.T) {
	p := New(nil)
	t.Cleanup(func() { _ = p.Stop(context.Background()) })

	var runs atomic.Int32
	stop, err := p.Every("tanks", time.Second, func(ctx context.Context) { runs.Add(1) })
	require.NoError(t, err)
	defer stop()

	require.Eventually(t, func() bool { return runs.Load() >= 1 }, 500*time.Millisecond, 10*time.Millisecond,
		"la primera ejecución no espera al intervalo")
	require.Eventually(t, func() bool { return runs.Load() >= 2 }, 3*time.Second, 50*time.Millisecond,
		"debe volver a ejecutarse tras el intervalo")
	assert.Equal(t, 1, p.Active())
}

func TestPoller_StopDetieneYCancelaContexto(t *testing.T) {
	p := New(nil)
	t.Cleanup(func() { _ = p.Stop(context.Background()) })

	started := make(chan struct{}, 1)
	var cancelled atomic.Bool
	stop, err := p.Every("slow", time.Second, func(ctx context.Context) {
		select {
		case started <- struct{}{}:
		default:
		}
		<-ctx.Done()
		cancelled.Store(true)
	})
	require.NoError(t, err)

	<-started
	stop()
	assert.True(t, cancelled.Load(), "stop espera a la ejecución en curso y cancela su ctx")
	assert.Equal(t, 0, p.Active())

	stop() // idempotente
}

func TestPoller_SinEjecucionesTrasStop(t *testing.T) {
	p := New(nil)
	t.Cleanup(func() { _ = p.Stop(context.Background()) })

	var runs atomic.Int32
	stop, err := p.Every("tanks", time.Second, func(ctx context.Context) { runs.Add(1) })
	require.NoError(t, err)
	require.Eventually(t, func() bool { return runs.Load() >= 1 }, 500*time.Millisecond, 10*time.Millisecond)

	stop()
	after := runs.Load()
	time.Sleep(1500 * time.Millisecond)
	assert.Equal(t, after, runs.Load())
}

func TestPoller_EntradaInvalida(t *testing.T) {
	p := New(nil)
	t.Cleanup(func() { _ = p.Stop(context.Background()) })
	job := func(context.Context) {}

	_, err := p.Every("", time.Second, job)
	assert.Error(t, err)
	_, err = p.Every("x", 10*time.Millisecond, job)
	assert.Error(t, err)
	_, err = p.Every("x", time.Second, nil)
	assert.Error(t, err)
}

func TestPoller_DetenidoRechazaTareas(t *testing.T) {
	p := New(nil)
	require.NoError(t, p.Stop(context.Background()))
	_, err := p.Every("x", time.Second, func(context.Context) {})
	assert.Error(t, err)
}

func TestPoller_PanicNoTumbaElPoller(t *testing.T) {
	p := New(nil)
	t.Cleanup(func() { _ = p.Stop(context.Background()) })

	var runs atomic.Int32
	stop, err := p.Every("boom", time.Second, func(context.Context) {
		runs.Add(1)
		panic("fallo")
	})
	require.NoError(t, err)
	defer stop()

	require.Eventually(t, func() bool { return runs.Load() >= 2 }, 3*time.Second, 50*time.Millisecond)
}
