// Package remote define los contratos hacia el colaborador remoto de
// procedimientos: fuentes de consulta por alcance (oficial vs gerencial),
// mutaciones, claves de caché y la tabla declarativa de invalidación.
// Las implementaciones viven en internal/infrastructure.
package remote

import (
	"fmt"
	"strings"
)

// ListFilter filtro recurrente de los listados del colaborador:
// {orgId, search, pageSize, cursor, officerId?}.
//
// OfficerID es un puntero a propósito: nil significa "todos los oficiales"
// (centinela explícito del modo gerencial sin filtro) y es distinto de un id
// vacío. El parámetro no debe viajar en la petición cuando es nil.
type ListFilter struct {
	OrgID     string
	Search    string
	FarmerID  string // opcional: restringe el listado a un granjero
	PageSize  int
	Cursor    string
	OfficerID *string
}

// CacheKey construye la clave canónica de caché para una operación de consulta
// con este filtro. El officerId ausente (nil) no aporta segmento alguno, de modo
// que "sin filtro" y "filtro con id vacío" producen claves distintas.
func (f ListFilter) CacheKey(operation string) string {
	var b strings.Builder
	b.WriteString(operation)
	b.WriteString("|org=")
	b.WriteString(f.OrgID)
	if f.Search != "" {
		b.WriteString("|q=")
		b.WriteString(f.Search)
	}
	if f.FarmerID != "" {
		b.WriteString("|farmer=")
		b.WriteString(f.FarmerID)
	}
	if f.PageSize > 0 {
		fmt.Fprintf(&b, "|ps=%d", f.PageSize)
	}
	if f.Cursor != "" {
		b.WriteString("|cur=")
		b.WriteString(f.Cursor)
	}
	if f.OfficerID != nil {
		b.WriteString("|off=")
		b.WriteString(*f.OfficerID)
	}
	return b.String()
}
