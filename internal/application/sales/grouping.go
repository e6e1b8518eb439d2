package sales

import (
	"sort"

	"github.com/avicampo/avicola-api/internal/domain/entity"
)

// CycleGroup ventas de un mismo ciclo (vivo o cerrado) ya agrupadas.
//
// TotalSold se combina con MAX, no con suma: CumulativeBirdsSold ya es un total
// corrido embebido en cada registro, y sumarlo contaría doble. Sales[0] es el
// primer registro encontrado en el orden de entrada; las operaciones de borrado
// lo usan como ancla, así que ese orden debe preservarse.
type CycleGroup struct {
	Key       string
	DOC       int
	Age       int
	TotalSold int
	IsEnded   bool
	Sales     []entity.SaleRecord
}

// Anchor el registro ancla del grupo (primero en orden de entrada).
func (g CycleGroup) Anchor() entity.SaleRecord {
	return g.Sales[0]
}

// FarmerGroup ciclos de un granjero, en orden de primera aparición.
type FarmerGroup struct {
	FarmerID   string
	FarmerName string
	Cycles     []*CycleGroup
}

// GroupByFarmer agrupa registros planos de venta en la jerarquía
// granjero → ciclo. Función pura del listado de entrada: reagrupar el mismo
// input produce salida estructuralmente igual, y barajar el input no altera
// TotalSold ni el tamaño de cada grupo (sí altera el ancla, por construcción).
// Los granjeros salen ordenados por nombre ascendente para despliegue estable.
func GroupByFarmer(records []entity.SaleRecord) []FarmerGroup {
	byFarmer := make(map[string]*FarmerGroup)
	order := make([]string, 0)

	for _, rec := range records {
		fg, ok := byFarmer[rec.FarmerID]
		if !ok {
			fg = &FarmerGroup{FarmerID: rec.FarmerID, FarmerName: rec.FarmerName}
			byFarmer[rec.FarmerID] = fg
			order = append(order, rec.FarmerID)
		}

		key := rec.CycleKey()
		var cg *CycleGroup
		for _, existing := range fg.Cycles {
			if existing.Key == key {
				cg = existing
				break
			}
		}
		if cg == nil {
			// El primer registro del ciclo siembra el grupo con su contexto
			// desnormalizado y queda como ancla en Sales[0].
			cg = &CycleGroup{
				Key:       key,
				DOC:       rec.CycleContext.DOC,
				Age:       rec.CycleContext.Age,
				TotalSold: rec.CycleContext.CumulativeBirdsSold,
				IsEnded:   rec.HistoryID != "",
			}
			fg.Cycles = append(fg.Cycles, cg)
		} else if rec.CycleContext.CumulativeBirdsSold > cg.TotalSold {
			cg.TotalSold = rec.CycleContext.CumulativeBirdsSold
		}
		cg.Sales = append(cg.Sales, rec)
	}

	out := make([]FarmerGroup, 0, len(order))
	for _, id := range order {
		out = append(out, *byFarmer[id])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].FarmerName < out[j].FarmerName
	})
	return out
}
