// reportes exporta el reporte de desempeño por oficial a PDF desde la línea de
// comandos, sin levantar el servidor HTTP. Útil para cortes mensuales.
//
// Uso: go run ./cmd/reportes -org <orgId> [-from AAAA-MM-DD] [-to AAAA-MM-DD] [-out dir]
// Por defecto cubre los últimos 30 días y escribe en EXPORT_DIR.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/avicampo/avicola-api/internal/application/dto"
	"github.com/avicampo/avicola-api/internal/application/reports"
	"github.com/avicampo/avicola-api/internal/domain/entity"
	"github.com/avicampo/avicola-api/internal/infrastructure/cache"
	"github.com/avicampo/avicola-api/internal/infrastructure/collaborator"
	infrapdf "github.com/avicampo/avicola-api/internal/infrastructure/pdf"
	"github.com/avicampo/avicola-api/pkg/config"
	"github.com/avicampo/avicola-api/pkg/logger"
)

func main() {
	orgID := flag.String("org", "", "id de la organización (requerido)")
	fromRaw := flag.String("from", "", "inicio del período (AAAA-MM-DD)")
	toRaw := flag.String("to", "", "fin del período (AAAA-MM-DD)")
	outDir := flag.String("out", "", "directorio de salida (por defecto EXPORT_DIR)")
	flag.Parse()

	if *orgID == "" {
		fmt.Fprintln(os.Stderr, "-org es requerido")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "warn"})

	to := time.Now()
	from := to.AddDate(0, 0, -30)
	if *fromRaw != "" {
		if from, err = time.Parse("2006-01-02", *fromRaw); err != nil {
			fmt.Fprintf(os.Stderr, "Período inválido (-from): %v\n", err)
			os.Exit(1)
		}
	}
	if *toRaw != "" {
		if to, err = time.Parse("2006-01-02", *toRaw); err != nil {
			fmt.Fprintf(os.Stderr, "Período inválido (-to): %v\n", err)
			os.Exit(1)
		}
	}

	dir := cfg.Export.Dir
	if *outDir != "" {
		dir = *outDir
	}

	// Corrida única: caché en memoria, sin Redis
	client := collaborator.NewClient(cfg.Remote, cache.NewMemoryCache(), log)
	management := collaborator.NewManagementSources(client)
	uc := reports.NewUseCase(management, infrapdf.NewMarotoPerformanceGenerator(), dir, log)

	m := entity.Membership{
		OrgID:      *orgID,
		Role:       entity.RoleOwner,
		Status:     entity.MembershipActive,
		ActiveMode: entity.ModeManagement,
	}
	out, err := uc.Export(context.Background(), m, dto.ExportReportRequest{From: from, To: to})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Exportar reporte: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Reporte escrito: %s\n", out.Path)
}
