package alert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tank(id string, percent int) TankLevel {
	return TankLevel{ProductID: id, ProductName: "Tank " + id, Percent: percent, Active: true}
}

// countNotifications recorre una secuencia de fotos y cuenta SMS emitidos por tanque.
func countNotifications(tr *Tracker, snapshots ...[]TankLevel) map[string]int {
	sent := map[string]int{}
	for _, snap := range snapshots {
		for _, n := range tr.Evaluate(snap).Notify {
			sent[n.ProductID]++
		}
	}
	return sent
}

func TestTracker_BajoDuranteNActualizaciones_UnSoloSMS(t *testing.T) {
	tr := NewTracker(20)
	var snaps [][]TankLevel
	for i := 0; i < 10; i++ {
		snaps = append(snaps, []TankLevel{tank("1", 15)})
	}
	sent := countNotifications(tr, snaps...)
	assert.Equal(t, 1, sent["1"], "un episodio continuo produce exactamente un SMS")
}

func TestTracker_SegundaActualizacionSuprimida(t *testing.T) {
	tr := NewTracker(20)

	first := tr.Evaluate([]TankLevel{tank("1", 15)})
	require.Len(t, first.Notify, 1)
	assert.Equal(t, "1", first.Notify[0].ProductID)

	second := tr.Evaluate([]TankLevel{tank("1", 15)})
	assert.Empty(t, second.Notify)
	require.Len(t, second.Suppressed, 1)
	assert.Equal(t, "1", second.Suppressed[0].ProductID)
}

func TestTracker_RecuperaYVuelveABajar_DosSMS(t *testing.T) {
	tr := NewTracker(20)
	sent := countNotifications(tr,
		[]TankLevel{tank("1", 15)},
		[]TankLevel{tank("1", 50)},
		[]TankLevel{tank("1", 10)},
	)
	assert.Equal(t, 2, sent["1"], "un SMS por episodio")
}

func TestTracker_TanqueRetirado_LimpiaConjunto(t *testing.T) {
	tr := NewTracker(20)
	tr.Evaluate([]TankLevel{tank("1", 5), tank("2", 8)})
	require.Equal(t, []string{"1", "2"}, tr.Alerted())

	d := tr.Evaluate([]TankLevel{tank("2", 8)})
	assert.Equal(t, []string{"1"}, d.Rearmed)
	assert.Equal(t, []string{"2"}, tr.Alerted(), "la clave retirada no queda colgada")

	// Vuelve a aparecer bajo: nuevo episodio, nuevo SMS.
	d = tr.Evaluate([]TankLevel{tank("1", 5), tank("2", 8)})
	require.Len(t, d.Notify, 1)
	assert.Equal(t, "1", d.Notify[0].ProductID)
}

func TestTracker_TanqueInactivo_NoAlertaYRearma(t *testing.T) {
	tr := NewTracker(20)
	tr.Evaluate([]TankLevel{tank("1", 5)})

	inactive := tank("1", 5)
	inactive.Active = false
	d := tr.Evaluate([]TankLevel{inactive})
	assert.Empty(t, d.Notify)
	assert.Equal(t, []string{"1"}, d.Rearmed)
	assert.Empty(t, tr.Alerted())
}

func TestTracker_UmbralEsEstricto(t *testing.T) {
	tr := NewTracker(20)
	d := tr.Evaluate([]TankLevel{tank("1", 20), tank("2", 19)})
	require.Len(t, d.Notify, 1)
	assert.Equal(t, "2", d.Notify[0].ProductID)
}

func TestTracker_ClaveVaciaYDuplicados(t *testing.T) {
	tr := NewTracker(0)
	assert.Equal(t, DefaultThreshold, tr.Threshold())

	d := tr.Evaluate([]TankLevel{tank("", 1), tank("3", 1), tank("3", 2)})
	require.Len(t, d.Notify, 1, "sin id no hay clave; duplicados cuentan una vez")
	assert.Equal(t, "3", d.Notify[0].ProductID)
}

func TestTracker_Reset(t *testing.T) {
	tr := NewTracker(20)
	tr.Evaluate([]TankLevel{tank("1", 1)})
	assert.True(t, tr.IsAlerted("1"))

	tr.Reset()
	assert.False(t, tr.IsAlerted("1"))
	assert.Len(t, tr.Evaluate([]TankLevel{tank("1", 1)}).Notify, 1)
}
