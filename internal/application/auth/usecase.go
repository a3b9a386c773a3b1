package auth

import (
	"github.com/tu-usuario/inventario-tienda/internal/application/dto"
	"github.com/tu-usuario/inventario-tienda/internal/domain"
	"github.com/tu-usuario/inventario-tienda/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// RoleAdmin único rol con permisos de mutación (cargar mercancía, editar,
// eliminar, reset). Vender y consultar reportes no requieren sesión.
const RoleAdmin = "admin"

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase candado de administrador: compara un secreto compartido contra
// su hash bcrypt y entrega un token de sesión con rol admin. No es una
// frontera de seguridad seria; es el candado de la pestaña de administración.
type AuthUseCase struct {
	passwordHash string
	storeRef     string
	jwtCfg       JWTConfig
}

// NewAuthUseCase construye el caso de uso.
func NewAuthUseCase(passwordHash, storeRef string, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{passwordHash: passwordHash, storeRef: storeRef, jwtCfg: jwtCfg}
}

// Login compara la contraseña y devuelve el token de sesión admin.
// Contraseña incorrecta (o candado sin configurar) → ErrUnauthorized.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if uc.passwordHash == "" || in.Password == "" {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(uc.passwordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, uc.storeRef, RoleAdmin, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token}, nil
}
