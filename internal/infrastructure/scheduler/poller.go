// Package scheduler implementa ports.Scheduler sobre robfig/cron.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jhoicas/finflux-dashboard/internal/application/ports"
	"github.com/jhoicas/finflux-dashboard/pkg/logger"
)

var _ ports.Scheduler = (*Poller)(nil)

// MinInterval menor intervalo aceptado; cron trabaja con resolución de segundos.
const MinInterval = time.Second

// Poller agenda tareas periódicas con intervalo constante.
// Una ejecución que se solapa con la anterior se descarta.
type Poller struct {
	cron   *cron.Cron
	clog   cron.Logger
	log    *logger.Logger
	ctx    context.Context
	cancel context.CancelFunc

	mu    sync.Mutex
	tasks map[string]int // nombre → ejecuciones activas registradas
}

// New crea y arranca el poller.
func New(log *logger.Logger) *Poller {
	if log == nil {
		log = logger.Nop()
	}
	log = log.Component("scheduler")
	clog := cronLogger{log: log}
	ctx, cancel := context.WithCancel(context.Background())
	p := &Poller{
		cron:   cron.New(cron.WithLogger(clog)),
		clog:   clog,
		log:    log,
		ctx:    ctx,
		cancel: cancel,
		tasks:  make(map[string]int),
	}
	p.cron.Start()
	return p
}

// task estado de una tarea agendada.
type task struct {
	mu      sync.Mutex
	stopped bool
	running sync.WaitGroup
}

// Every corre job de inmediato y luego cada interval hasta que se llame a stop.
// El ctx del job se cancela al detener la tarea o el poller.
func (p *Poller) Every(name string, interval time.Duration, job func(ctx context.Context)) (func(), error) {
	if name == "" {
		return nil, errors.New("scheduler: nombre requerido")
	}
	if job == nil {
		return nil, errors.New("scheduler: job requerido")
	}
	if interval < MinInterval {
		return nil, fmt.Errorf("scheduler: intervalo %s menor que %s", interval, MinInterval)
	}
	if p.ctx.Err() != nil {
		return nil, errors.New("scheduler: detenido")
	}

	ctx, cancel := context.WithCancel(p.ctx)
	t := &task{}
	run := cron.FuncJob(func() {
		t.mu.Lock()
		if t.stopped {
			t.mu.Unlock()
			return
		}
		t.running.Add(1)
		t.mu.Unlock()
		defer t.running.Done()
		if ctx.Err() != nil {
			return
		}
		job(ctx)
	})
	wrapped := cron.NewChain(cron.Recover(p.clog), cron.SkipIfStillRunning(p.clog)).Then(run)

	id := p.cron.Schedule(cron.Every(interval), wrapped)
	p.mu.Lock()
	p.tasks[name]++
	p.mu.Unlock()
	p.log.Debug().Str("task", name).Dur("interval", interval).Msg("tarea agendada")

	go wrapped.Run()

	var once sync.Once
	stop := func() {
		once.Do(func() {
			t.mu.Lock()
			t.stopped = true
			t.mu.Unlock()
			cancel()
			p.cron.Remove(id)
			t.running.Wait()

			p.mu.Lock()
			p.tasks[name]--
			if p.tasks[name] <= 0 {
				delete(p.tasks, name)
			}
			p.mu.Unlock()
			p.log.Debug().Str("task", name).Msg("tarea detenida")
		})
	}
	return stop, nil
}

// Active cantidad de tareas registradas.
func (p *Poller) Active() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, c := range p.tasks {
		n += c
	}
	return n
}

// Stop cancela todas las tareas y espera a que terminen las ejecuciones en curso
// o a que venza ctx.
func (p *Poller) Stop(ctx context.Context) error {
	p.cancel()
	select {
	case <-p.cron.Stop().Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// cronLogger adapta el logger del servicio a cron.Logger.
type cronLogger struct {
	log *logger.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debug().Fields(keysAndValues).Msg(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Error().Err(err).Fields(keysAndValues).Msg(msg)
}
