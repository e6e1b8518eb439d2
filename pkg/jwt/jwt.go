package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims incluye los claims estándar JWT más los campos propios de la sesión.
// OrgID, Role, Mode y Status viajan en el token para que los middlewares puedan
// decidir sin ida al colaborador; RemoteSession guarda el token de sesión del
// colaborador de autenticación para las operaciones que lo requieren (sign-out).
type Claims struct {
	jwt.RegisteredClaims
	UserID        string `json:"user_id"`
	OrgID         string `json:"org_id"`
	Role          string `json:"role"`   // "OWNER" | "MANAGER" | "OFFICER"
	Mode          string `json:"mode"`   // "MANAGEMENT" | "OFFICER"
	Status        string `json:"status"` // estado de la membresía
	RemoteSession string `json:"remote_session,omitempty"`
}

// Session datos de la sesión que se firman dentro del token.
type Session struct {
	UserID        string
	OrgID         string
	Role          string
	Mode          string
	Status        string
	RemoteSession string
}

// Generate genera un token de sesión firmado.
func Generate(secret, issuer string, s Session, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   s.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID:        s.UserID,
		OrgID:         s.OrgID,
		Role:          s.Role,
		Mode:          s.Mode,
		Status:        s.Status,
		RemoteSession: s.RemoteSession,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token y devuelve los claims de sesión.
// Retorna error si el token es inválido, expirado o con firma incorrecta.
func Parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return claims, nil
}
