package remote

// Prefijos de clave de caché por namespace y recurso. Toda operación de consulta
// construye su clave bajo uno de estos prefijos; la invalidación borra por prefijo.
const (
	KeyOfficerFarmers    = "officer.farmers"
	KeyOfficerCycles     = "officer.cycles"
	KeyOfficerStock      = "officer.stock"
	KeyOfficerSales      = "officer.sales"
	KeyOfficerFeedOrders = "officer.feedOrders"
	KeyOfficerDOCOrders  = "officer.docOrders"
	KeyOfficerSaleOrders = "officer.saleOrders"

	KeyManagementFarmers    = "management.farmers"
	KeyManagementCycles     = "management.cycles"
	KeyManagementStock      = "management.stock"
	KeyManagementSales      = "management.sales"
	KeyManagementFeedOrders = "management.feedOrders"
	KeyManagementDOCOrders  = "management.docOrders"
	KeyManagementSaleOrders = "management.saleOrders"
	KeyManagementReports    = "management.performanceReports"
	KeyManagementMembers    = "management.members"
	KeyManagementAnalytics  = "management.analytics"
)

// bothScopes abrevia la pareja oficial+gerencial de un mismo recurso: una
// mutación sobre el recurso debe invalidar ambas vistas para que las pantallas
// de los dos modos converjan a la verdad del servidor.
func bothScopes(officerKey, managementKey string) []string {
	return []string{officerKey, managementKey}
}
