package controllers

import (
	"net/http"

	rootcontrollers "github.com/LeitoBarrera/estudios_mid/controllers"
	internaldto "github.com/LeitoBarrera/estudios_mid/internal/dto"
	internalservices "github.com/LeitoBarrera/estudios_mid/internal/services"
)

// AuthController expone login y perfil de la sesión.
type AuthController struct {
	rootcontrollers.BaseController
}

// PostLogin intercambia credenciales por tokens del core.
// @router /v1/auth/login [post]
func (c *AuthController) PostLogin() {
	var body internaldto.LoginReq
	if err := c.ParseJSONBody(&body); err != nil {
		c.RespondError(err)
		return
	}
	tokens, err := internalservices.Login(c.Ctx, body)
	if err != nil {
		c.RespondError(err)
		return
	}
	c.RespondSuccess(http.StatusOK, "OK", tokens)
}

// GetMe devuelve el perfil del usuario autenticado; el rol decide el tablero.
// @router /v1/auth/me [get]
func (c *AuthController) GetMe() {
	ses, ok := c.RequireSesion()
	if !ok {
		return
	}
	perfil, err := internalservices.PerfilActual(c.Ctx, ses)
	if err != nil {
		c.RespondError(err)
		return
	}
	c.RespondSuccess(http.StatusOK, "OK", perfil)
}
