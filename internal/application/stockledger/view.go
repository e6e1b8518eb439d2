package stockledger

import "github.com/avicampo/avicola-api/internal/domain/entity"

// RevertedIDs deriva el conjunto de movimientos neutralizados: los ReferenceID
// de todas las CORRECTION presentes en la lista. Cómputo puro de vista; se
// rehace cada vez que cambia el listado y jamás se persiste en el cliente.
func RevertedIDs(logs []entity.StockLog) map[string]bool {
	reverted := make(map[string]bool)
	for _, l := range logs {
		if l.IsCorrection() {
			reverted[l.ReferenceID] = true
		}
	}
	return reverted
}

// LedgerEntry un movimiento con sus marcas de vista derivadas.
type LedgerEntry struct {
	Log       entity.StockLog
	Reverted  bool // aparece tachado/deshabilitado
	CanRevert bool // falso para correcciones y para revertidos (sin doble reversa)
}

// BuildView marca cada movimiento según el conjunto de reversiones derivado.
func BuildView(logs []entity.StockLog) []LedgerEntry {
	reverted := RevertedIDs(logs)
	out := make([]LedgerEntry, 0, len(logs))
	for _, l := range logs {
		isReverted := reverted[l.ID]
		out = append(out, LedgerEntry{
			Log:       l,
			Reverted:  isReverted,
			CanRevert: !isReverted && l.Type != entity.StockLogCorrection,
		})
	}
	return out
}
