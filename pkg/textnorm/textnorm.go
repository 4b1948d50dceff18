package textnorm

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Name normaliza un nombre de item: forma NFC y espacios internos colapsados.
// Dos nombres que se ven iguales deben compararse iguales en la verificación de unicidad.
func Name(s string) string {
	return strings.Join(strings.Fields(norm.NFC.String(s)), " ")
}
