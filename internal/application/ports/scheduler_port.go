package ports

import (
	"context"
	"time"
)

// Scheduler ejecuta tareas periódicas cancelables.
// Every corre job de inmediato y luego cada interval; stop detiene la tarea
// y espera a que termine la ejecución en curso.
type Scheduler interface {
	Every(name string, interval time.Duration, job func(ctx context.Context)) (stop func(), err error)
}
