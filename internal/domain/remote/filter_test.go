package remote_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avicampo/avicola-api/internal/domain/remote"
)

// Caso 1: el officerId nil (todos los oficiales) no aporta segmento, y es
// distinguible de un filtro con id vacío: sus claves nunca colisionan.
func TestCacheKey_OfficerNilVsVacio(t *testing.T) {
	base := remote.ListFilter{OrgID: "org-1"}

	vacio := ""
	conVacio := base
	conVacio.OfficerID = &vacio

	claveNil := base.CacheKey("officer.farmers.list")
	claveVacia := conVacio.CacheKey("officer.farmers.list")

	assert.Equal(t, "officer.farmers.list|org=org-1", claveNil)
	assert.Equal(t, "officer.farmers.list|org=org-1|off=", claveVacia)
	assert.NotEqual(t, claveNil, claveVacia)
}

// Caso 2: mismo filtro, misma clave. La canonicalización es determinista.
func TestCacheKey_Determinista(t *testing.T) {
	oficial := "of-9"
	f := remote.ListFilter{
		OrgID:     "org-1",
		Search:    "doña rosa",
		PageSize:  20,
		Cursor:    "abc",
		OfficerID: &oficial,
	}
	assert.Equal(t, f.CacheKey("management.sales.list"), f.CacheKey("management.sales.list"))
}

// Caso 3: cada campo presente aporta su segmento y los ausentes no dejan rastro.
func TestCacheKey_Segmentos(t *testing.T) {
	oficial := "of-9"
	f := remote.ListFilter{
		OrgID:     "org-1",
		Search:    "rosa",
		FarmerID:  "g-3",
		PageSize:  20,
		Cursor:    "abc",
		OfficerID: &oficial,
	}
	assert.Equal(t,
		"officer.cycles.list|org=org-1|q=rosa|farmer=g-3|ps=20|cur=abc|off=of-9",
		f.CacheKey("officer.cycles.list"))

	minimo := remote.ListFilter{OrgID: "org-1"}
	assert.Equal(t, "officer.cycles.list|org=org-1", minimo.CacheKey("officer.cycles.list"))
}

// Caso 4: la clave empieza por la operación, que a su vez empieza por el prefijo
// de invalidación del recurso; así el borrado por prefijo alcanza la consulta.
func TestCacheKey_PrefijoDeInvalidacion(t *testing.T) {
	f := remote.ListFilter{OrgID: "org-1"}
	clave := f.CacheKey("management.performanceReports.list")
	assert.True(t, len(clave) > len(remote.KeyManagementReports))
	assert.Equal(t, remote.KeyManagementReports, clave[:len(remote.KeyManagementReports)])
}
