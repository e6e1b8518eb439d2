package session

import (
	"github.com/avicampo/avicola-api/internal/application/dto"
	"github.com/avicampo/avicola-api/internal/domain/entity"
	"github.com/avicampo/avicola-api/internal/domain/remote"
)

// BuildFilter arma el filtro de listado según el modo de vista activo.
//
// En modo oficial el alcance "mis datos" lo impone el namespace del colaborador,
// así que el filtro no lleva officerId. En modo gerencial se adjunta el oficial
// seleccionado; nil viaja como parámetro ausente ("todos los oficiales"), nunca
// como cadena vacía.
func BuildFilter(m entity.Membership, req dto.PageRequest, selected *string) remote.ListFilter {
	f := remote.ListFilter{
		OrgID:    m.OrgID,
		Search:   req.Search,
		PageSize: req.PageSize,
		Cursor:   req.Cursor,
	}
	if m.ActiveMode == entity.ModeManagement {
		f.OfficerID = selected
	}
	return f
}
