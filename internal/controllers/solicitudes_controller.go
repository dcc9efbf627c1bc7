package controllers

import (
	"net/http"

	rootcontrollers "github.com/LeitoBarrera/estudios_mid/controllers"
	internaldto "github.com/LeitoBarrera/estudios_mid/internal/dto"
	internalhelpers "github.com/LeitoBarrera/estudios_mid/internal/helpers"
	internalservices "github.com/LeitoBarrera/estudios_mid/internal/services"
	"github.com/LeitoBarrera/estudios_mid/models"
)

// SolicitudesController expone el tablero del cliente sobre sus solicitudes.
type SolicitudesController struct {
	rootcontrollers.BaseController
}

// GetAll lista las solicitudes visibles para la sesión.
// @router /v1/solicitudes [get]
func (c *SolicitudesController) GetAll() {
	ses, ok := c.RequireSesion(models.RolCliente, models.RolAdmin)
	if !ok {
		return
	}
	rows, err := internalservices.ListarSolicitudes(c.Ctx, ses)
	if err != nil {
		c.RespondError(err)
		return
	}
	c.RespondSuccess(http.StatusOK, "OK", rows)
}

// Post crea una solicitud con su candidato embebido.
// @router /v1/solicitudes [post]
func (c *SolicitudesController) Post() {
	ses, ok := c.RequireSesion(models.RolCliente, models.RolAdmin)
	if !ok {
		return
	}
	var body internaldto.SolicitudCreateReq
	if err := c.ParseJSONBody(&body); err != nil {
		c.RespondError(err)
		return
	}
	row, err := internalservices.CrearSolicitud(c.Ctx, ses, body)
	if err != nil {
		c.RespondError(err)
		return
	}
	c.RespondSuccess(http.StatusCreated, "solicitud creada", row)
}

// PostInvitar envía la invitación por correo al candidato.
// @router /v1/solicitudes/:id/invitar_candidato [post]
func (c *SolicitudesController) PostInvitar() {
	ses, ok := c.RequireSesion(models.RolCliente, models.RolAdmin)
	if !ok {
		return
	}
	id, err := internalhelpers.ParamInt(c.Ctx, ":id")
	if err != nil {
		c.RespondError(err)
		return
	}
	resp, err := internalservices.InvitarCandidato(c.Ctx, ses, id)
	if err != nil {
		c.RespondError(err)
		return
	}
	c.RespondSuccess(http.StatusOK, "invitación enviada", resp)
}
