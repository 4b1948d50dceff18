package clock

import "time"

// Clock provee la hora actual. Se inyecta en los casos de uso para poder fijarla en tests.
type Clock interface {
	Now() time.Time
}

// Real usa el reloj del sistema (UTC).
type Real struct{}

// Now devuelve la hora actual en UTC.
func (Real) Now() time.Time { return time.Now().UTC() }

// Fixed devuelve siempre el mismo instante.
type Fixed struct {
	T time.Time
}

// Now devuelve el instante fijo.
func (f Fixed) Now() time.Time { return f.T }

// Epoch construye un reloj fijo en 1970-01-01T00:00:00Z.
func Epoch() Fixed {
	return Fixed{T: time.Unix(0, 0).UTC()}
}
