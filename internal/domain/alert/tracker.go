// Package alert implementa la detección de episodios de stock bajo en tanques.
//
// Cada tanque tiene dos bits: "bajo el umbral" y "ya alertado". Un SMS se emite
// solo en el flanco de entrada al episodio; la salida (recuperación, baja o
// desactivación) rearma el tanque para el siguiente episodio.
package alert

import (
	"sort"
	"sync"
)

// DefaultThreshold porcentaje de llenado por debajo del cual un tanque está bajo.
const DefaultThreshold = 20

// TankLevel lectura de un tanque en una actualización.
type TankLevel struct {
	ProductID   string
	ProductName string
	Percent     int
	Active      bool
}

// Low indica si la lectura cuenta como stock bajo para el umbral dado.
func (l TankLevel) Low(threshold int) bool {
	return l.Active && l.Percent < threshold
}

// Decision resultado de evaluar una actualización.
type Decision struct {
	Notify     []TankLevel // entran en episodio: enviar un SMS por cada uno
	Suppressed []TankLevel // siguen bajos y ya alertados
	Rearmed    []string    // claves retiradas del conjunto
}

// Tracker conjunto de claves alertadas. Seguro para uso concurrente.
type Tracker struct {
	mu        sync.Mutex
	threshold int
	alerted   map[string]struct{}
}

// NewTracker crea un tracker vacío. threshold <= 0 usa DefaultThreshold.
func NewTracker(threshold int) *Tracker {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Tracker{threshold: threshold, alerted: make(map[string]struct{})}
}

// Threshold umbral configurado.
func (t *Tracker) Threshold() int { return t.threshold }

// Evaluate aplica la regla de transición sobre la foto completa de tanques.
// Las claves en Notify quedan marcadas antes de devolver: un fallo de envío no rearma el tanque.
func (t *Tracker) Evaluate(levels []TankLevel) Decision {
	t.mu.Lock()
	defer t.mu.Unlock()

	var d Decision
	low := make(map[string]struct{}, len(levels))
	for _, l := range levels {
		if l.ProductID == "" || !l.Low(t.threshold) {
			continue
		}
		if _, seen := low[l.ProductID]; seen {
			continue
		}
		low[l.ProductID] = struct{}{}
		if _, ok := t.alerted[l.ProductID]; ok {
			d.Suppressed = append(d.Suppressed, l)
			continue
		}
		t.alerted[l.ProductID] = struct{}{}
		d.Notify = append(d.Notify, l)
	}

	for key := range t.alerted {
		if _, still := low[key]; !still {
			delete(t.alerted, key)
			d.Rearmed = append(d.Rearmed, key)
		}
	}
	sort.Strings(d.Rearmed)
	return d
}

// Alerted devuelve las claves alertadas, ordenadas.
func (t *Tracker) Alerted() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]string, 0, len(t.alerted))
	for k := range t.alerted {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// IsAlerted indica si el tanque está dentro de un episodio ya notificado.
func (t *Tracker) IsAlerted(productID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.alerted[productID]
	return ok
}

// Reset vacía el conjunto (cierre de sesión).
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.alerted = make(map[string]struct{})
}
