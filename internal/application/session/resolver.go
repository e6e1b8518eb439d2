// Package session resuelve la membresía del usuario firmado y mantiene el
// filtro de oficial seleccionado, con alcance de sesión de aplicación.
package session

import (
	"context"
	"fmt"

	"github.com/avicampo/avicola-api/internal/application/dto"
	"github.com/avicampo/avicola-api/internal/domain"
	"github.com/avicampo/avicola-api/internal/domain/entity"
	"github.com/avicampo/avicola-api/internal/domain/remote"
)

// Resolver consulta la sesión al colaborador de autenticación y aplica el gate
// de membresía que gobierna el renderizado de todas las pantallas.
type Resolver struct {
	auth remote.AuthGateway
}

// NewResolver construye el resolutor.
func NewResolver(auth remote.AuthGateway) *Resolver {
	return &Resolver{auth: auth}
}

// Resolve obtiene la sesión y la membresía del token dado.
func (r *Resolver) Resolve(ctx context.Context, token string) (*remote.SessionInfo, error) {
	info, err := r.auth.GetSession(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("session: resolver sesión: %w", err)
	}
	if info == nil {
		return nil, domain.ErrUnauthorized
	}
	return info, nil
}

// Gate traduce el estado de la membresía al error de dominio que bloquea (o no)
// el acceso. Solo ACTIVE pasa.
func Gate(m entity.Membership) error {
	switch m.Status {
	case entity.MembershipActive:
		return nil
	case entity.MembershipPending:
		return domain.ErrMembershipPending
	case entity.MembershipRejected:
		return domain.ErrMembershipRejected
	default:
		return domain.ErrNoOrganization
	}
}

// ToSessionResponse arma el DTO de sesión para GET /api/session.
func ToSessionResponse(info *remote.SessionInfo) dto.SessionResponse {
	return dto.SessionResponse{
		UserID:      info.UserID,
		Email:       info.Email,
		OrgID:       info.Membership.OrgID,
		Role:        info.Membership.Role,
		AccessLevel: info.Membership.AccessLevel,
		Status:      info.Membership.Status,
		ActiveMode:  string(info.Membership.ActiveMode),
	}
}
