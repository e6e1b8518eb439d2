package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avicampo/avicola-api/internal/application/auth"
	"github.com/avicampo/avicola-api/internal/domain"
)

// Caso 1: un código de seis dígitos ASCII pasa la validación de forma.
func TestValidateOTP_CodigoValido(t *testing.T) {
	assert.NoError(t, auth.ValidateOTP("000000"))
	assert.NoError(t, auth.ValidateOTP("493817"))
}

// Caso 2: longitud distinta de seis se rechaza antes de tocar al colaborador.
func TestValidateOTP_LongitudIncorrecta(t *testing.T) {
	casos := []string{"", "12345", "1234567"}
	for _, code := range casos {
		err := auth.ValidateOTP(code)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "código %q", code)
	}
}

// Caso 3: solo dígitos ASCII. Letras, signos y dígitos unicode (p. ej. "٣"
// arábigo) se rechazan aunque unicode los clasifique como numéricos.
func TestValidateOTP_SoloDigitosASCII(t *testing.T) {
	casos := []string{"12a456", "12 456", "-12345", "١٢٣٤٥٦"}
	for _, code := range casos {
		err := auth.ValidateOTP(code)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "código %q", code)
	}
}
