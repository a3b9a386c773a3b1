package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/inventario-tienda/internal/application/auth"
	"github.com/tu-usuario/inventario-tienda/internal/application/dto"
	"github.com/tu-usuario/inventario-tienda/internal/domain"
	pkgjwt "github.com/tu-usuario/inventario-tienda/pkg/jwt"
)

const testSecret = "secret-de-test"

func nuevoCandado(t *testing.T, password string) *auth.AuthUseCase {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return auth.NewAuthUseCase(string(hash), "tienda-test", auth.JWTConfig{
		Secret: testSecret, ExpMinutes: 60, Issuer: "test",
	})
}

func TestLogin_ContrasenaCorrectaEntregaTokenAdmin(t *testing.T) {
	uc := nuevoCandado(t, "mi-llave")

	out, err := uc.Login(dto.LoginRequest{Password: "mi-llave"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	storeRef, role, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "tienda-test", storeRef)
	assert.Equal(t, auth.RoleAdmin, role, "el token debe llevar el rol admin")
}

func TestLogin_ContrasenaIncorrecta(t *testing.T) {
	uc := nuevoCandado(t, "mi-llave")
	_, err := uc.Login(dto.LoginRequest{Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_CandadoSinConfigurar(t *testing.T) {
	uc := auth.NewAuthUseCase("", "tienda-test", auth.JWTConfig{Secret: testSecret})
	_, err := uc.Login(dto.LoginRequest{Password: "cualquiera"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized,
		"sin hash configurado nadie debe poder abrir sesión")
}
