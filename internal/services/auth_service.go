package services

import (
	"net/http"
	"strings"

	"github.com/beego/beego/v2/server/web/context"

	"github.com/LeitoBarrera/estudios_mid/helpers"
	"github.com/LeitoBarrera/estudios_mid/internal/clients"
	internaldto "github.com/LeitoBarrera/estudios_mid/internal/dto"
	internalhelpers "github.com/LeitoBarrera/estudios_mid/internal/helpers"
	"github.com/LeitoBarrera/estudios_mid/models"
)

// Login intercambia credenciales por tokens del core. Las credenciales nunca
// se registran ni se guardan; el MID solo las reenvía.
func Login(ctx *context.Context, req internaldto.LoginReq) (*internaldto.TokensDTO, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return nil, helpers.NewAppError(http.StatusBadRequest, "usuario y contraseña requeridos", nil)
	}
	tokens, err := clients.Core().Login(requestContext(ctx), username, req.Password)
	if err != nil {
		if helpers.IsHTTPError(err, http.StatusUnauthorized) {
			return nil, helpers.NewAppError(http.StatusUnauthorized, "credenciales inválidas", err)
		}
		return nil, helpers.AsAppError(err, "error iniciando sesión")
	}
	return tokens, nil
}

// PerfilActual devuelve el perfil de la sesión; el rol decide el tablero.
func PerfilActual(ctx *context.Context, ses *internalhelpers.Sesion) (*models.PerfilUsuario, error) {
	perfil, err := clients.Core().Me(requestContext(ctx), internalhelpers.CopyRequestHeaders(ctx))
	if err != nil {
		return nil, helpers.AsAppError(err, "error consultando el perfil")
	}
	return perfil, nil
}
