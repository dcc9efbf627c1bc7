package controllers

import (
	"net/http"
	"net/url"
	"strings"

	rootcontrollers "github.com/LeitoBarrera/estudios_mid/controllers"
	"github.com/LeitoBarrera/estudios_mid/helpers"
	internaldto "github.com/LeitoBarrera/estudios_mid/internal/dto"
	internalhelpers "github.com/LeitoBarrera/estudios_mid/internal/helpers"
	internalservices "github.com/LeitoBarrera/estudios_mid/internal/services"
	"github.com/LeitoBarrera/estudios_mid/models"
)

// EstudiosController expone el flujo de revisión sobre estudios. El core filtra
// la visibilidad por rol; aquí solo se restringen las mutaciones del analista.
type EstudiosController struct {
	rootcontrollers.BaseController
}

// GetAll lista los estudios visibles, con filtros opcionales
// (estado, desde, hasta, cedula).
// @router /v1/estudios [get]
func (c *EstudiosController) GetAll() {
	ses, ok := c.RequireSesion()
	if !ok {
		return
	}
	filtros := url.Values{}
	for _, campo := range []string{"estado", "desde", "hasta", "cedula"} {
		if v := strings.TrimSpace(c.GetString(campo)); v != "" {
			filtros.Set(campo, v)
		}
	}
	estudios, err := internalservices.ListarEstudios(c.Ctx, ses, filtros)
	if err != nil {
		c.RespondError(err)
		return
	}
	c.RespondSuccess(http.StatusOK, "OK", estudios)
}

// GetAbrir resuelve el enlace profundo ?solicitud=<id> de las notificaciones.
// @router /v1/estudios/abrir [get]
func (c *EstudiosController) GetAbrir() {
	ses, ok := c.RequireSesion()
	if !ok {
		return
	}
	solicitudID, presente, err := internalhelpers.QueryInt(c.Ctx, "solicitud")
	if err != nil {
		c.RespondError(err)
		return
	}
	if !presente {
		c.RespondError(helpers.NewAppError(http.StatusBadRequest, "falta solicitud", nil))
		return
	}
	estudio, err := internalservices.AbrirPorSolicitud(c.Ctx, ses, solicitudID)
	if err != nil {
		c.RespondError(err)
		return
	}
	c.RespondSuccess(http.StatusOK, "OK", estudio)
}

// GetOne devuelve un estudio con su checklist completo.
// @router /v1/estudios/:id [get]
func (c *EstudiosController) GetOne() {
	ses, ok := c.RequireSesion()
	if !ok {
		return
	}
	id, err := internalhelpers.ParamInt(c.Ctx, ":id")
	if err != nil {
		c.RespondError(err)
		return
	}
	estudio, err := internalservices.DetalleEstudio(c.Ctx, ses, id)
	if err != nil {
		c.RespondError(err)
		return
	}
	c.RespondSuccess(http.StatusOK, "OK", estudio)
}

// GetResumen devuelve la vista agregada del estudio.
// @router /v1/estudios/:id/resumen [get]
func (c *EstudiosController) GetResumen() {
	ses, ok := c.RequireSesion()
	if !ok {
		return
	}
	id, err := internalhelpers.ParamInt(c.Ctx, ":id")
	if err != nil {
		c.RespondError(err)
		return
	}
	resumen, err := internalservices.ResumenEstudio(c.Ctx, ses, id)
	if err != nil {
		c.RespondError(err)
		return
	}
	c.RespondSuccess(http.StatusOK, "OK", resumen)
}

// GetResumenPDF reenvía el PDF generado por el core sin tocarlo.
// @router /v1/estudios/:id/resumen_pdf [get]
func (c *EstudiosController) GetResumenPDF() {
	ses, ok := c.RequireSesion()
	if !ok {
		return
	}
	id, err := internalhelpers.ParamInt(c.Ctx, ":id")
	if err != nil {
		c.RespondError(err)
		return
	}
	body, contentType, err := internalservices.ResumenPDF(c.Ctx, ses, id)
	if err != nil {
		c.RespondError(err)
		return
	}
	if contentType == "" {
		contentType = "application/pdf"
	}
	c.Ctx.Output.Header("Content-Type", contentType)
	c.Ctx.Output.SetStatus(http.StatusOK)
	_ = c.Ctx.Output.Body(body)
}

// PostValidarMasivo valida en bloque los ítems marcados por el analista.
// @router /v1/estudios/:id/validar_masivo [post]
func (c *EstudiosController) PostValidarMasivo() {
	ses, ok := c.RequireSesion(models.RolAnalista, models.RolAdmin)
	if !ok {
		return
	}
	id, err := internalhelpers.ParamInt(c.Ctx, ":id")
	if err != nil {
		c.RespondError(err)
		return
	}
	var body internaldto.ValidacionMasivaReq
	if err := c.ParseJSONBody(&body); err != nil {
		c.RespondError(err)
		return
	}
	estudio, err := internalservices.ValidarMasivo(c.Ctx, ses, id, body)
	if err != nil {
		c.RespondError(err)
		return
	}
	c.RespondSuccess(http.StatusOK, "ítems validados", estudio)
}

// PostAgregarItem agrega un ítem al checklist del estudio.
// @router /v1/estudios/:id/items [post]
func (c *EstudiosController) PostAgregarItem() {
	ses, ok := c.RequireSesion(models.RolAnalista, models.RolAdmin)
	if !ok {
		return
	}
	id, err := internalhelpers.ParamInt(c.Ctx, ":id")
	if err != nil {
		c.RespondError(err)
		return
	}
	var body internaldto.AgregarItemReq
	if err := c.ParseJSONBody(&body); err != nil {
		c.RespondError(err)
		return
	}
	estudio, err := internalservices.AgregarItem(c.Ctx, ses, id, body)
	if err != nil {
		c.RespondError(err)
		return
	}
	c.RespondSuccess(http.StatusCreated, "ítem agregado", estudio)
}

// PostValidarItem valida un ítem individual y devuelve el estudio releído.
// @router /v1/estudios/:id/items/:itemId/validar [post]
func (c *EstudiosController) PostValidarItem() {
	ses, ok := c.RequireSesion(models.RolAnalista, models.RolAdmin)
	if !ok {
		return
	}
	id, err := internalhelpers.ParamInt(c.Ctx, ":id")
	if err != nil {
		c.RespondError(err)
		return
	}
	itemID, err := internalhelpers.ParamInt(c.Ctx, ":itemId")
	if err != nil {
		c.RespondError(err)
		return
	}
	var body internaldto.ValidarItemReq
	if err := c.ParseJSONBody(&body); err != nil {
		c.RespondError(err)
		return
	}
	estudio, err := internalservices.ValidarItem(c.Ctx, ses, id, itemID, body)
	if err != nil {
		c.RespondError(err)
		return
	}
	c.RespondSuccess(http.StatusOK, "ítem validado", estudio)
}

// PostHallazgo marca un ítem con hallazgo; el comentario es obligatorio.
// @router /v1/estudios/:id/items/:itemId/hallazgo [post]
func (c *EstudiosController) PostHallazgo() {
	ses, ok := c.RequireSesion(models.RolAnalista, models.RolAdmin)
	if !ok {
		return
	}
	id, err := internalhelpers.ParamInt(c.Ctx, ":id")
	if err != nil {
		c.RespondError(err)
		return
	}
	itemID, err := internalhelpers.ParamInt(c.Ctx, ":itemId")
	if err != nil {
		c.RespondError(err)
		return
	}
	var body internaldto.HallazgoReq
	if err := c.ParseJSONBody(&body); err != nil {
		c.RespondError(err)
		return
	}
	estudio, err := internalservices.MarcarHallazgo(c.Ctx, ses, id, itemID, body)
	if err != nil {
		c.RespondError(err)
		return
	}
	c.RespondSuccess(http.StatusOK, "hallazgo registrado", estudio)
}
