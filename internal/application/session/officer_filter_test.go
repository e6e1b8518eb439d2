package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avicampo/avicola-api/internal/application/dto"
	"github.com/avicampo/avicola-api/internal/application/session"
	"github.com/avicampo/avicola-api/internal/domain/entity"
)

// ─────────────────────────────────────────────
// OfficerFilter
// ─────────────────────────────────────────────

// Caso 1: sin selección previa el filtro es nil (todos los oficiales).
func TestOfficerFilter_SinSeleccionEsNil(t *testing.T) {
	filtros := session.NewOfficerFilter()
	assert.Nil(t, filtros.GetSelectedOfficer("u-1"))
}

// Caso 2: fijar y leer; cada usuario tiene su propia selección.
func TestOfficerFilter_PorUsuario(t *testing.T) {
	filtros := session.NewOfficerFilter()
	id := "of-7"
	filtros.SetSelectedOfficer("u-1", &id)

	sel := filtros.GetSelectedOfficer("u-1")
	require.NotNil(t, sel)
	assert.Equal(t, "of-7", *sel)
	assert.Nil(t, filtros.GetSelectedOfficer("u-2"))
}

// Caso 3: el valor se copia; mutar el puntero del llamador no altera la selección.
func TestOfficerFilter_CopiaElValor(t *testing.T) {
	filtros := session.NewOfficerFilter()
	id := "of-7"
	filtros.SetSelectedOfficer("u-1", &id)
	id = "of-99"

	sel := filtros.GetSelectedOfficer("u-1")
	require.NotNil(t, sel)
	assert.Equal(t, "of-7", *sel)
}

// Caso 4: fijar nil limpia la selección; Reset hace lo mismo al cerrar sesión.
func TestOfficerFilter_LimpiarYReset(t *testing.T) {
	filtros := session.NewOfficerFilter()
	id := "of-7"

	filtros.SetSelectedOfficer("u-1", &id)
	filtros.SetSelectedOfficer("u-1", nil)
	assert.Nil(t, filtros.GetSelectedOfficer("u-1"))

	filtros.SetSelectedOfficer("u-1", &id)
	filtros.Reset("u-1")
	assert.Nil(t, filtros.GetSelectedOfficer("u-1"))
}

// ─────────────────────────────────────────────
// BuildFilter
// ─────────────────────────────────────────────

// Caso 5: en modo oficial el officerId nunca viaja, aunque haya selección.
func TestBuildFilter_ModoOficialIgnoraSeleccion(t *testing.T) {
	m := entity.Membership{OrgID: "org-1", ActiveMode: entity.ModeOfficer}
	id := "of-7"

	f := session.BuildFilter(m, dto.PageRequest{Search: "rosa", PageSize: 20}, &id)

	assert.Nil(t, f.OfficerID)
	assert.Equal(t, "org-1", f.OrgID)
	assert.Equal(t, "rosa", f.Search)
	assert.Equal(t, 20, f.PageSize)
}

// Caso 6: en modo gerencial el filtro lleva la selección tal cual, nil incluido.
func TestBuildFilter_ModoGerencial(t *testing.T) {
	m := entity.Membership{OrgID: "org-1", ActiveMode: entity.ModeManagement}
	id := "of-7"

	conSeleccion := session.BuildFilter(m, dto.PageRequest{}, &id)
	require.NotNil(t, conSeleccion.OfficerID)
	assert.Equal(t, "of-7", *conSeleccion.OfficerID)

	sinSeleccion := session.BuildFilter(m, dto.PageRequest{}, nil)
	assert.Nil(t, sinSeleccion.OfficerID)
}
