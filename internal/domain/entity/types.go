package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ID identificador del backend. Algunos recursos lo envían como número y otros como string.
type ID string

// UnmarshalJSON acepta "abc", 123 y null.
func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*id = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id: valor no soportado %s", string(b))
	}
	*id = ID(n.String())
	return nil
}

// String devuelve el id como string.
func (id ID) String() string { return string(id) }

// Flag booleano tolerante: el backend devuelve true, "true", 1 o null según el recurso.
type Flag bool

// UnmarshalJSON interpreta true/"true"/1 como verdadero; cualquier otro valor es falso.
func (f *Flag) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	switch strings.ToLower(s) {
	case "true", "1":
		*f = true
	default:
		*f = false
	}
	return nil
}

// Layouts aceptados para fechas del backend (LocalDateTime de Java sin zona incluido).
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseTimestamp interpreta los formatos conocidos. Los que no traen zona se leen en hora local.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		var (
			t   time.Time
			err error
		)
		if layout == time.RFC3339Nano {
			t, err = time.Parse(layout, s)
		} else {
			t, err = time.ParseInLocation(layout, s, time.Local)
		}
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("fecha no reconocida: %q", s)
}

// Timestamp fecha-hora del backend. Vacío o null queda en cero.
type Timestamp struct {
	time.Time
}

// UnmarshalJSON acepta string en los layouts conocidos, epoch en milisegundos o null.
func (t *Timestamp) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" || string(b) == `""` {
		t.Time = time.Time{}
		return nil
	}
	if b[0] != '"' {
		ms, err := strconv.ParseInt(string(b), 10, 64)
		if err != nil {
			return fmt.Errorf("timestamp: %w", err)
		}
		t.Time = time.UnixMilli(ms)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

// MarshalJSON serializa en RFC3339; cero como null.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Format(time.RFC3339))
}

// DateLayout formato de las fechas de calendario del backend.
const DateLayout = "2006-01-02"

// Date fecha de calendario (YYYY-MM-DD) en hora local.
type Date struct {
	time.Time
}

// NewDate trunca t al día local.
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, t.Location())}
}

// UnmarshalJSON acepta "2024-01-08", fecha-hora completa (se trunca) o null.
func (d *Date) UnmarshalJSON(b []byte) error {
	var ts Timestamp
	if err := ts.UnmarshalJSON(b); err != nil {
		return err
	}
	if ts.IsZero() {
		d.Time = time.Time{}
		return nil
	}
	*d = NewDate(ts.Time)
	return nil
}

// MarshalJSON serializa como "YYYY-MM-DD"; cero como null.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(DateLayout))
}

// String devuelve YYYY-MM-DD o vacío.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}
