package reports

import "github.com/avicampo/avicola-api/internal/application/dto"

// PerformancePDFGenerator genera el PDF del reporte de desempeño de oficiales.
// La implementación concreta vive en infraestructura.
type PerformancePDFGenerator interface {
	Generate(report dto.PerformanceReportResponse) ([]byte, error)
}
