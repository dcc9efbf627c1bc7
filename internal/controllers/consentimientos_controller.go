package controllers

import (
	"net/http"

	rootcontrollers "github.com/LeitoBarrera/estudios_mid/controllers"
	internaldto "github.com/LeitoBarrera/estudios_mid/internal/dto"
	internalhelpers "github.com/LeitoBarrera/estudios_mid/internal/helpers"
	internalservices "github.com/LeitoBarrera/estudios_mid/internal/services"
	"github.com/LeitoBarrera/estudios_mid/models"
)

// ConsentimientosController maneja el asistente de consentimiento del candidato.
// Tres pasos en orden estricto: firma, habeas data, términos.
type ConsentimientosController struct {
	rootcontrollers.BaseController
}

// GetEstado devuelve el avance del asistente para un estudio.
// @router /v1/consentimientos/:estudioId [get]
func (c *ConsentimientosController) GetEstado() {
	ses, ok := c.RequireSesion(models.RolCandidato)
	if !ok {
		return
	}
	estudioID, err := internalhelpers.ParamInt(c.Ctx, ":estudioId")
	if err != nil {
		c.RespondError(err)
		return
	}
	estado, err := internalservices.EstadoConsentimiento(c.Ctx, ses, estudioID)
	if err != nil {
		c.RespondError(err)
		return
	}
	c.RespondSuccess(http.StatusOK, "OK", estado)
}

// PostFirmar ejecuta el paso 1 con la imagen de la firma.
// @router /v1/consentimientos/:estudioId/firmar [post]
func (c *ConsentimientosController) PostFirmar() {
	ses, ok := c.RequireSesion(models.RolCandidato)
	if !ok {
		return
	}
	estudioID, err := internalhelpers.ParamInt(c.Ctx, ":estudioId")
	if err != nil {
		c.RespondError(err)
		return
	}
	var body internaldto.FirmaReq
	if err := c.ParseJSONBody(&body); err != nil {
		c.RespondError(err)
		return
	}
	estado, err := internalservices.FirmarConsentimiento(c.Ctx, ses, estudioID, body)
	if err != nil {
		c.RespondError(err)
		return
	}
	c.RespondSuccess(http.StatusOK, "autorización firmada", estado)
}

// PostHabeas ejecuta el paso 2.
// @router /v1/consentimientos/:estudioId/habeas [post]
func (c *ConsentimientosController) PostHabeas() {
	ses, ok := c.RequireSesion(models.RolCandidato)
	if !ok {
		return
	}
	estudioID, err := internalhelpers.ParamInt(c.Ctx, ":estudioId")
	if err != nil {
		c.RespondError(err)
		return
	}
	var body internaldto.AceptacionReq
	if err := c.ParseJSONBody(&body); err != nil {
		c.RespondError(err)
		return
	}
	estado, err := internalservices.AceptarHabeas(c.Ctx, ses, estudioID, body)
	if err != nil {
		c.RespondError(err)
		return
	}
	c.RespondSuccess(http.StatusOK, "habeas data aceptado", estado)
}

// PostTerminos ejecuta el paso 3.
// @router /v1/consentimientos/:estudioId/terminos [post]
func (c *ConsentimientosController) PostTerminos() {
	ses, ok := c.RequireSesion(models.RolCandidato)
	if !ok {
		return
	}
	estudioID, err := internalhelpers.ParamInt(c.Ctx, ":estudioId")
	if err != nil {
		c.RespondError(err)
		return
	}
	var body internaldto.AceptacionReq
	if err := c.ParseJSONBody(&body); err != nil {
		c.RespondError(err)
		return
	}
	estado, err := internalservices.AceptarTerminos(c.Ctx, ses, estudioID, body)
	if err != nil {
		c.RespondError(err)
		return
	}
	c.RespondSuccess(http.StatusOK, "términos aceptados", estado)
}
