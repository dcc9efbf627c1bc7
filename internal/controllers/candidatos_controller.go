package controllers

import (
	"net/http"

	rootcontrollers "github.com/LeitoBarrera/estudios_mid/controllers"
	internaldto "github.com/LeitoBarrera/estudios_mid/internal/dto"
	internalservices "github.com/LeitoBarrera/estudios_mid/internal/services"
	"github.com/LeitoBarrera/estudios_mid/models"
)

// CandidatosController gestiona la hoja de vida del candidato autenticado.
type CandidatosController struct {
	rootcontrollers.BaseController
}

// GetMe devuelve la hoja de vida completa.
// @router /v1/candidatos/me [get]
func (c *CandidatosController) GetMe() {
	ses, ok := c.RequireSesion(models.RolCandidato)
	if !ok {
		return
	}
	bio, err := internalservices.ObtenerBio(c.Ctx, ses)
	if err != nil {
		c.RespondError(err)
		return
	}
	c.RespondSuccess(http.StatusOK, "OK", bio)
}

// PatchMe guarda campos de la hoja de vida. Solo viajan los campos presentes;
// requiere el consentimiento completo.
// @router /v1/candidatos/me [patch]
func (c *CandidatosController) PatchMe() {
	ses, ok := c.RequireSesion(models.RolCandidato)
	if !ok {
		return
	}
	var body internaldto.CandidatoBioPatch
	if err := c.ParseJSONBody(&body); err != nil {
		c.RespondError(err)
		return
	}
	bio, err := internalservices.ActualizarBio(c.Ctx, ses, body)
	if err != nil {
		c.RespondError(err)
		return
	}
	c.RespondSuccess(http.StatusOK, "hoja de vida actualizada", bio)
}
