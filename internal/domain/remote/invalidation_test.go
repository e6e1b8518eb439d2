package remote_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avicampo/avicola-api/internal/domain/remote"
)

// todasLasMutaciones el universo de mutaciones que el cliente puede emitir. Si
// se agrega una mutación nueva sin registrarla aquí y en la tabla, estos tests
// obligan a decidir su conjunto de invalidación.
var todasLasMutaciones = []remote.MutationKind{
	remote.MutationCreateFarmer,
	remote.MutationUpdateFarmer,
	remote.MutationDeleteFarmer,
	remote.MutationRestock,
	remote.MutationTransferStock,
	remote.MutationRevertLog,
	remote.MutationRecordMortality,
	remote.MutationCloseCycle,
	remote.MutationRecordSale,
	remote.MutationDeleteSale,
	remote.MutationPlaceFeedOrder,
	remote.MutationConfirmFeedOrder,
	remote.MutationPlaceDOCOrder,
	remote.MutationConfirmDOCOrder,
	remote.MutationPlaceSaleOrder,
	remote.MutationConfirmSaleOrder,
	remote.MutationApproveMember,
	remote.MutationRejectMember,
}

// Caso 1: ninguna mutación queda sin conjunto de invalidación declarado.
func TestInvalidationSets_NingunaMutacionSinConjunto(t *testing.T) {
	for _, kind := range todasLasMutaciones {
		keys := remote.AffectedKeys(kind)
		assert.NotEmpty(t, keys, "la mutación %s no declara qué invalida", kind)
	}
	assert.Len(t, remote.InvalidationSets, len(todasLasMutaciones),
		"la tabla tiene mutaciones que el universo de este test no conoce")
}

// Caso 2: toda mutación sobre un recurso con vista en ambos modos invalida las
// claves de los dos alcances, para que las pantallas converjan juntas.
func TestInvalidationSets_AmbosAlcances(t *testing.T) {
	pares := map[remote.MutationKind][2]string{
		remote.MutationCreateFarmer:     {remote.KeyOfficerFarmers, remote.KeyManagementFarmers},
		remote.MutationRestock:          {remote.KeyOfficerStock, remote.KeyManagementStock},
		remote.MutationRecordMortality:  {remote.KeyOfficerCycles, remote.KeyManagementCycles},
		remote.MutationRecordSale:       {remote.KeyOfficerSales, remote.KeyManagementSales},
		remote.MutationPlaceFeedOrder:   {remote.KeyOfficerFeedOrders, remote.KeyManagementFeedOrders},
		remote.MutationConfirmDOCOrder:  {remote.KeyOfficerDOCOrders, remote.KeyManagementDOCOrders},
		remote.MutationConfirmSaleOrder: {remote.KeyOfficerSaleOrders, remote.KeyManagementSaleOrders},
	}
	for kind, par := range pares {
		keys := remote.AffectedKeys(kind)
		assert.Contains(t, keys, par[0], "%s debe invalidar la vista oficial", kind)
		assert.Contains(t, keys, par[1], "%s debe invalidar la vista gerencial", kind)
	}
}

// Caso 3: los efectos colaterales del servidor están cubiertos: confirmar una
// orden de alimento mueve MainStock (granjeros + ledger); confirmar una orden
// DOC crea ciclos; cerrar un ciclo liquida alimento contra el ledger.
func TestInvalidationSets_EfectosColaterales(t *testing.T) {
	confirmFeed := remote.AffectedKeys(remote.MutationConfirmFeedOrder)
	assert.Contains(t, confirmFeed, remote.KeyOfficerFarmers)
	assert.Contains(t, confirmFeed, remote.KeyOfficerStock)

	confirmDOC := remote.AffectedKeys(remote.MutationConfirmDOCOrder)
	assert.Contains(t, confirmDOC, remote.KeyOfficerCycles)

	closeCycle := remote.AffectedKeys(remote.MutationCloseCycle)
	assert.Contains(t, closeCycle, remote.KeyOfficerStock)
	assert.Contains(t, closeCycle, remote.KeyOfficerFarmers)
	assert.Contains(t, closeCycle, remote.KeyManagementAnalytics)
}

// Caso 4: toda pantalla de lectura tiene al menos una mutación que la invalida
// (una clave que nadie invalida jamás serviría datos obsoletos para siempre;
// members y analytics gerenciales se refrescan con las mutaciones de gerencia).
func TestInvalidationSets_CubreTodasLasPantallas(t *testing.T) {
	pantallas := []string{
		remote.KeyOfficerFarmers, remote.KeyManagementFarmers,
		remote.KeyOfficerCycles, remote.KeyManagementCycles,
		remote.KeyOfficerStock, remote.KeyManagementStock,
		remote.KeyOfficerSales, remote.KeyManagementSales,
		remote.KeyOfficerFeedOrders, remote.KeyManagementFeedOrders,
		remote.KeyOfficerDOCOrders, remote.KeyManagementDOCOrders,
		remote.KeyOfficerSaleOrders, remote.KeyManagementSaleOrders,
		remote.KeyManagementReports, remote.KeyManagementMembers,
		remote.KeyManagementAnalytics,
	}

	invalidadas := make(map[string]bool)
	for _, keys := range remote.InvalidationSets {
		for _, k := range keys {
			invalidadas[k] = true
		}
	}
	for _, pantalla := range pantallas {
		assert.True(t, invalidadas[pantalla], "ninguna mutación invalida %s", pantalla)
	}
}

// Caso 5: una mutación desconocida devuelve nil, que la capa de aplicación
// trata como defecto (lo registra y no invalida nada).
func TestAffectedKeys_MutacionDesconocida(t *testing.T) {
	require.Nil(t, remote.AffectedKeys(remote.MutationKind("nada.deEsto")))
}
