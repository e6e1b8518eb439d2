package dto

// SignUpRequest body de POST /api/auth/sign-up. La igualdad password/confirm se
// valida del lado del cliente; el colaborador de auth recibe una sola contraseña.
type SignUpRequest struct {
	Email           string `json:"email"`
	Name            string `json:"name"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// Validate validación del lado del cliente; nunca viaja al servidor si falla.
func (r SignUpRequest) Validate() string {
	if r.Email == "" || r.Password == "" {
		return "email y contraseña son requeridos"
	}
	if len(r.Password) < 8 {
		return "la contraseña debe tener al menos 8 caracteres"
	}
	if r.Password != r.ConfirmPassword {
		return "las contraseñas no coinciden"
	}
	return ""
}

// VerifyOTPRequest body de POST /api/auth/verify-otp.
type VerifyOTPRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"` // 6 dígitos numéricos, longitud fija
}

// PasswordResetRequest body de POST /api/auth/password-reset.
type PasswordResetRequest struct {
	Email string `json:"email"`
}

// PasswordResetConfirmRequest body de POST /api/auth/password-reset/confirm.
type PasswordResetConfirmRequest struct {
	Email           string `json:"email"`
	Code            string `json:"code"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

// Validate validación del lado del cliente (igualdad de campos cruzados).
func (r PasswordResetConfirmRequest) Validate() string {
	if r.Email == "" || r.Code == "" {
		return "email y código son requeridos"
	}
	if len(r.NewPassword) < 8 {
		return "la contraseña debe tener al menos 8 caracteres"
	}
	if r.NewPassword != r.ConfirmPassword {
		return "las contraseñas no coinciden"
	}
	return ""
}

// SessionResponse respuesta de GET /api/session: la membresía que gobierna el
// renderizado de todas las pantallas.
type SessionResponse struct {
	UserID      string `json:"user_id"`
	Email       string `json:"email"`
	OrgID       string `json:"org_id,omitempty"`
	Role        string `json:"role,omitempty"`
	AccessLevel int    `json:"access_level"`
	Status      string `json:"status"`
	ActiveMode  string `json:"active_mode"`
}

// TokenResponse token de sesión emitido tras verificar el OTP.
type TokenResponse struct {
	Token string `json:"token"`
}
