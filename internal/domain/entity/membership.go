package entity

// Roles válidos dentro de una organización.
const (
	RoleOwner   = "OWNER"
	RoleManager = "MANAGER"
	RoleOfficer = "OFFICER"
)

// Estados de aprobación de una membresía.
const (
	MembershipNoOrg    = "NO_ORG"
	MembershipPending  = "PENDING"
	MembershipRejected = "REJECTED"
	MembershipActive   = "ACTIVE"
)

// ViewMode modo de vista activo del usuario. Decide qué fuente de datos
// (alcance oficial vs gerencial) usa cada pantalla; se resuelve una sola vez por petición.
type ViewMode string

const (
	ModeManagement ViewMode = "MANAGEMENT"
	ModeOfficer    ViewMode = "OFFICER"
)

// ParseViewMode normaliza el modo; cualquier valor desconocido cae a OFFICER,
// el modo de menor privilegio.
func ParseViewMode(s string) ViewMode {
	if s == string(ModeManagement) {
		return ModeManagement
	}
	return ModeOfficer
}

// Membership membresía del usuario firmado en su organización. Controla el acceso
// a todas las pantallas: solo ACTIVE pasa el gate.
type Membership struct {
	UserID      string   `json:"userId"`
	OrgID       string   `json:"orgId"`
	Role        string   `json:"role"`        // OWNER | MANAGER | OFFICER
	AccessLevel int      `json:"accessLevel"` // nivel dentro de la jerarquía de oficiales
	Status      string   `json:"status"`      // NO_ORG | PENDING | REJECTED | ACTIVE
	ActiveMode  ViewMode `json:"activeMode"`  // MANAGEMENT | OFFICER
}

// CanManage informa si la membresía permite operar en modo gerencial.
func (m Membership) CanManage() bool {
	return m.Role == RoleOwner || m.Role == RoleManager
}

// Member entrada del listado de miembros para la pantalla de aprobaciones.
type Member struct {
	ID           string `json:"id"`
	UserID       string `json:"userId"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	Status       string `json:"status"`
	SupervisorID string `json:"supervisorId,omitempty"` // jerarquía de oficiales
}
