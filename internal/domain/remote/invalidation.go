package remote

// InvalidationSets tabla declarativa mutación → prefijos de caché afectados.
//
// Cada mutación debe declarar aquí TODAS las consultas que quedan obsoletas tras
// su éxito; la capa de aplicación invalida exactamente este conjunto y nada más.
// Antes este acoplamiento era implícito (cada mutación "recordaba" qué refrescar);
// la tabla lo vuelve verificable: un test exige que ningún conjunto esté vacío y
// que cubra todas las pantallas que leen el dato mutado.
var InvalidationSets = map[MutationKind][]string{
	MutationCreateFarmer: bothScopes(KeyOfficerFarmers, KeyManagementFarmers),
	MutationUpdateFarmer: bothScopes(KeyOfficerFarmers, KeyManagementFarmers),
	MutationDeleteFarmer: append(
		bothScopes(KeyOfficerFarmers, KeyManagementFarmers),
		KeyOfficerCycles, KeyManagementCycles, KeyManagementAnalytics,
	),

	// Movimientos de stock tocan el ledger y el saldo del granjero (MainStock).
	MutationRestock: append(
		bothScopes(KeyOfficerStock, KeyManagementStock),
		KeyOfficerFarmers, KeyManagementFarmers,
	),
	MutationTransferStock: append(
		bothScopes(KeyOfficerStock, KeyManagementStock),
		KeyOfficerFarmers, KeyManagementFarmers,
	),
	MutationRevertLog: append(
		bothScopes(KeyOfficerStock, KeyManagementStock),
		KeyOfficerFarmers, KeyManagementFarmers,
	),

	// La mortalidad altera las aves vivas del ciclo y la analítica gerencial.
	MutationRecordMortality: append(
		bothScopes(KeyOfficerCycles, KeyManagementCycles),
		KeyManagementAnalytics, KeyManagementReports,
	),
	// Cerrar ciclo además liquida alimento restante contra el ledger (CYCLE_CLOSE).
	MutationCloseCycle: append(
		bothScopes(KeyOfficerCycles, KeyManagementCycles),
		KeyOfficerStock, KeyManagementStock,
		KeyOfficerFarmers, KeyManagementFarmers,
		KeyManagementAnalytics, KeyManagementReports,
	),

	MutationRecordSale: append(
		bothScopes(KeyOfficerSales, KeyManagementSales),
		KeyOfficerCycles, KeyManagementCycles, KeyManagementAnalytics,
	),
	MutationDeleteSale: append(
		bothScopes(KeyOfficerSales, KeyManagementSales),
		KeyOfficerCycles, KeyManagementCycles, KeyManagementAnalytics,
	),

	MutationPlaceFeedOrder: bothScopes(KeyOfficerFeedOrders, KeyManagementFeedOrders),
	// Confirmar una orden de alimento es lo que mueve MainStock del lado del servidor.
	MutationConfirmFeedOrder: append(
		bothScopes(KeyOfficerFeedOrders, KeyManagementFeedOrders),
		KeyOfficerFarmers, KeyManagementFarmers,
		KeyOfficerStock, KeyManagementStock,
	),
	MutationPlaceDOCOrder: bothScopes(KeyOfficerDOCOrders, KeyManagementDOCOrders),
	// Confirmar una orden DOC crea ciclos del lado del servidor.
	MutationConfirmDOCOrder: append(
		bothScopes(KeyOfficerDOCOrders, KeyManagementDOCOrders),
		KeyOfficerCycles, KeyManagementCycles,
	),
	MutationPlaceSaleOrder: bothScopes(KeyOfficerSaleOrders, KeyManagementSaleOrders),
	MutationConfirmSaleOrder: append(
		bothScopes(KeyOfficerSaleOrders, KeyManagementSaleOrders),
		KeyOfficerSales, KeyManagementSales,
		KeyOfficerCycles, KeyManagementCycles,
		KeyManagementAnalytics,
	),

	MutationApproveMember: {KeyManagementMembers, KeyManagementReports, KeyManagementAnalytics},
	MutationRejectMember:  {KeyManagementMembers},
}

// AffectedKeys devuelve el conjunto declarado para la mutación, o nil si la
// mutación no está registrada (condición que los tests tratan como defecto).
func AffectedKeys(kind MutationKind) []string {
	return InvalidationSets[kind]
}
