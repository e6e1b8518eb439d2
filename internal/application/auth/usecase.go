// Package auth orquesta los flujos de autenticación contra el colaborador
// externo: registro con OTP, restablecimiento de contraseña y cierre de sesión.
// El cliente no hace trabajo criptográfico propio; valida la forma de los datos
// y reenvía. El token que emite esta capa es el JWT propio de la aplicación.
package auth

import (
	"context"
	"fmt"

	"github.com/avicampo/avicola-api/internal/application/dto"
	"github.com/avicampo/avicola-api/internal/application/session"
	"github.com/avicampo/avicola-api/internal/domain"
	"github.com/avicampo/avicola-api/internal/domain/entity"
	"github.com/avicampo/avicola-api/internal/domain/remote"
	"github.com/avicampo/avicola-api/pkg/config"
	"github.com/avicampo/avicola-api/pkg/jwt"
	"github.com/avicampo/avicola-api/pkg/logger"
)

// UseCase casos de uso de autenticación.
type UseCase struct {
	gateway remote.AuthGateway
	filters *session.OfficerFilter
	jwtCfg  config.JWTConfig
	log     *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(gateway remote.AuthGateway, filters *session.OfficerFilter, jwtCfg config.JWTConfig, log *logger.Logger) *UseCase {
	return &UseCase{gateway: gateway, filters: filters, jwtCfg: jwtCfg, log: log}
}

// SignUp inicia el registro. El colaborador envía el código OTP al correo.
func (uc *UseCase) SignUp(ctx context.Context, req dto.SignUpRequest) error {
	if msg := req.Validate(); msg != "" {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, msg)
	}
	if err := uc.gateway.SignUp(ctx, remote.SignUpInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	}); err != nil {
		return fmt.Errorf("auth: registrando cuenta: %w", err)
	}
	return nil
}

// VerifyOTP valida la forma del código (6 dígitos numéricos), lo reenvía tal
// cual al colaborador y, con la sesión resuelta, emite el JWT de la aplicación.
func (uc *UseCase) VerifyOTP(ctx context.Context, req dto.VerifyOTPRequest) (*dto.TokenResponse, error) {
	if err := ValidateOTP(req.Code); err != nil {
		return nil, err
	}
	remoteToken, err := uc.gateway.VerifyOTP(ctx, req.Email, req.Code)
	if err != nil {
		return nil, fmt.Errorf("auth: verificando código: %w", err)
	}

	info, err := uc.gateway.GetSession(ctx, remoteToken)
	if err != nil {
		return nil, fmt.Errorf("auth: resolviendo sesión nueva: %w", err)
	}
	// El gateway responde (nil, nil) cuando el colaborador aún no reconoce la
	// sesión; sin membresía no hay token que emitir.
	if info == nil {
		return nil, domain.ErrUnauthorized
	}

	token, err := uc.issueToken(info, remoteToken, info.Membership.ActiveMode)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("user_id", info.UserID).Msg("Sesión iniciada")
	return &dto.TokenResponse{Token: token}, nil
}

// SwitchMode reemite el token con el modo de vista pedido. Entrar al modo
// gerencial exige una membresía OWNER o MANAGER.
func (uc *UseCase) SwitchMode(info *remote.SessionInfo, remoteToken string, mode entity.ViewMode) (*dto.TokenResponse, error) {
	if mode == entity.ModeManagement && !info.Membership.CanManage() {
		return nil, fmt.Errorf("%w: el modo gerencial requiere rol OWNER o MANAGER", domain.ErrForbidden)
	}
	token, err := uc.issueToken(info, remoteToken, mode)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{Token: token}, nil
}

// RequestPasswordReset inicia el restablecimiento de contraseña.
func (uc *UseCase) RequestPasswordReset(ctx context.Context, email string) error {
	if email == "" {
		return fmt.Errorf("%w: el email es requerido", domain.ErrInvalidInput)
	}
	if err := uc.gateway.RequestPasswordReset(ctx, email); err != nil {
		return fmt.Errorf("auth: solicitando restablecimiento: %w", err)
	}
	return nil
}

// ConfirmPasswordReset reenvía código y contraseña nueva al colaborador.
func (uc *UseCase) ConfirmPasswordReset(ctx context.Context, req dto.PasswordResetConfirmRequest) error {
	if msg := req.Validate(); msg != "" {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, msg)
	}
	if err := ValidateOTP(req.Code); err != nil {
		return err
	}
	if err := uc.gateway.ConfirmPasswordReset(ctx, req.Email, req.Code, req.NewPassword); err != nil {
		return fmt.Errorf("auth: confirmando restablecimiento: %w", err)
	}
	return nil
}

// ResendCode pide reenviar el código pendiente.
func (uc *UseCase) ResendCode(ctx context.Context, email string) error {
	if email == "" {
		return fmt.Errorf("%w: el email es requerido", domain.ErrInvalidInput)
	}
	if err := uc.gateway.ResendCode(ctx, email); err != nil {
		return fmt.Errorf("auth: reenviando código: %w", err)
	}
	return nil
}

// SignOut cierra la sesión del colaborador y descarta el filtro de oficial
// seleccionado del usuario. El filtro jamás sobrevive a la sesión.
func (uc *UseCase) SignOut(ctx context.Context, userID, remoteToken string) error {
	if err := uc.gateway.SignOut(ctx, remoteToken); err != nil {
		return fmt.Errorf("auth: cerrando sesión: %w", err)
	}
	uc.filters.Reset(userID)
	uc.log.Info().Str("user_id", userID).Msg("Sesión cerrada")
	return nil
}

func (uc *UseCase) issueToken(info *remote.SessionInfo, remoteToken string, mode entity.ViewMode) (string, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, uc.jwtCfg.Issuer, jwt.Session{
		UserID:        info.UserID,
		OrgID:         info.Membership.OrgID,
		Role:          info.Membership.Role,
		Mode:          string(mode),
		Status:        info.Membership.Status,
		RemoteSession: remoteToken,
	}, uc.jwtCfg.Expiration)
	if err != nil {
		return "", fmt.Errorf("auth: emitiendo token: %w", err)
	}
	return token, nil
}

// ValidateOTP valida la forma del código de verificación: longitud fija y solo
// dígitos. El contenido lo valida el colaborador.
func ValidateOTP(code string) error {
	if len(code) != remote.OTPLength {
		return fmt.Errorf("%w: el código debe tener %d dígitos", domain.ErrInvalidInput, remote.OTPLength)
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return fmt.Errorf("%w: el código solo admite dígitos", domain.ErrInvalidInput)
		}
	}
	return nil
}
