package controllers

import (
	"net/http"
	"strings"

	rootcontrollers "github.com/LeitoBarrera/estudios_mid/controllers"
	internalhelpers "github.com/LeitoBarrera/estudios_mid/internal/helpers"
	internalservices "github.com/LeitoBarrera/estudios_mid/internal/services"
)

// NotificacionesController expone el panel de notificaciones respaldado por el
// sondeo por sesión.
type NotificacionesController struct {
	rootcontrollers.BaseController
}

// GetAll devuelve el panel; con ?refrescar=1 fuerza una consulta al core.
// @router /v1/notificaciones [get]
func (c *NotificacionesController) GetAll() {
	ses, ok := c.RequireSesion()
	if !ok {
		return
	}
	forzar := strings.TrimSpace(c.GetString("refrescar")) == "1"
	panel, err := internalservices.ObtenerNotificaciones(c.Ctx, ses, forzar)
	if err != nil {
		c.RespondError(err)
		return
	}
	c.RespondSuccess(http.StatusOK, "OK", panel)
}

// PostMarcarTodas marca todas como leídas y devuelve el panel recargado.
// @router /v1/notificaciones/marcar_todas [post]
func (c *NotificacionesController) PostMarcarTodas() {
	ses, ok := c.RequireSesion()
	if !ok {
		return
	}
	panel, err := internalservices.MarcarTodasLeidas(c.Ctx, ses)
	if err != nil {
		c.RespondError(err)
		return
	}
	c.RespondSuccess(http.StatusOK, "notificaciones marcadas", panel)
}

// PostAbrir marca leída (si se puede) y resuelve la ruta de destino.
// @router /v1/notificaciones/:id/abrir [post]
func (c *NotificacionesController) PostAbrir() {
	ses, ok := c.RequireSesion()
	if !ok {
		return
	}
	id, err := internalhelpers.ParamInt(c.Ctx, ":id")
	if err != nil {
		c.RespondError(err)
		return
	}
	resp, err := internalservices.AbrirNotificacion(c.Ctx, ses, id)
	if err != nil {
		c.RespondError(err)
		return
	}
	c.RespondSuccess(http.StatusOK, "OK", resp)
}
