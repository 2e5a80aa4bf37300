// Package auth valida credenciales del administrador y emite tokens JWT.
// Las mutaciones sensibles del libro de ventas exigen el rol admin.
package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/akax-pajomel/ventas-api/internal/application/dto"
	"github.com/akax-pajomel/ventas-api/internal/domain"
	"github.com/akax-pajomel/ventas-api/pkg/config"
	"github.com/akax-pajomel/ventas-api/pkg/jwt"
	"github.com/akax-pajomel/ventas-api/pkg/logger"
)

// RoleAdmin rol con permiso para editar, eliminar y registrar abonos.
const RoleAdmin = "admin"

// UseCase login del administrador.
type UseCase struct {
	admin  config.AdminConfig
	jwtCfg config.JWTConfig
	log    *logger.Logger
}

// NewUseCase construye el caso de uso de autenticación.
func NewUseCase(admin config.AdminConfig, jwtCfg config.JWTConfig, log *logger.Logger) *UseCase {
	return &UseCase{admin: admin, jwtCfg: jwtCfg, log: log}
}

// Login valida usuario y contraseña contra la configuración y devuelve un
// token con rol admin. Prefiere el hash bcrypt; la contraseña en claro solo
// aplica si no hay hash configurado.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Username != uc.admin.Username || !uc.checkPassword(in.Password) {
		uc.log.Warn().Str("usuario", in.Username).Msg("Intento de login fallido")
		return nil, domain.ErrUnauthorized
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, in.Username, RoleAdmin, uc.jwtCfg.Issuer, uc.jwtCfg.Expiration)
	if err != nil {
		return nil, err
	}

	uc.log.Info().Str("usuario", in.Username).Msg("Login correcto")
	return &dto.LoginResponse{Token: token, ExpiresIn: uc.jwtCfg.Expiration}, nil
}

func (uc *UseCase) checkPassword(password string) bool {
	if uc.admin.PasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(uc.admin.PasswordHash), []byte(password)) == nil
	}
	return uc.admin.Password != "" && password == uc.admin.Password
}
