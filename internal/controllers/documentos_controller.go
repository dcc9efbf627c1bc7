package controllers

import (
	"net/http"

	rootcontrollers "github.com/LeitoBarrera/estudios_mid/controllers"
	"github.com/LeitoBarrera/estudios_mid/helpers"
	internalhelpers "github.com/LeitoBarrera/estudios_mid/internal/helpers"
	internalservices "github.com/LeitoBarrera/estudios_mid/internal/services"
	"github.com/LeitoBarrera/estudios_mid/models"
)

// DocumentosController gestiona los soportes del candidato contra el catálogo fijo.
type DocumentosController struct {
	rootcontrollers.BaseController
}

// GetAll devuelve los soportes, el catálogo y los requeridos faltantes.
// @router /v1/documentos [get]
func (c *DocumentosController) GetAll() {
	ses, ok := c.RequireSesion(models.RolCandidato)
	if !ok {
		return
	}
	estado, err := internalservices.EstadoDocumentos(c.Ctx, ses)
	if err != nil {
		c.RespondError(err)
		return
	}
	c.RespondSuccess(http.StatusOK, "OK", estado)
}

// Post sube un soporte nuevo; siempre multipart (tipo + archivo).
// @router /v1/documentos [post]
func (c *DocumentosController) Post() {
	ses, ok := c.RequireSesion(models.RolCandidato)
	if !ok {
		return
	}
	if !esMultipart(c.Ctx.Request) {
		c.RespondError(helpers.NewAppError(http.StatusBadRequest, "se espera multipart/form-data", nil))
		return
	}
	values, err := valoresForm(c.Ctx.Request)
	if err != nil {
		c.RespondError(err)
		return
	}
	file, header, err := c.GetFile("archivo")
	if err != nil {
		c.RespondError(helpers.NewAppError(http.StatusBadRequest, "archivo requerido", err))
		return
	}
	defer file.Close()

	estado, err := internalservices.SubirDocumento(c.Ctx, ses, values.Get("tipo"), header.Filename, file)
	if err != nil {
		c.RespondError(err)
		return
	}
	c.RespondSuccess(http.StatusCreated, "documento subido", estado)
}

// Delete elimina un soporte.
// @router /v1/documentos/:id [delete]
func (c *DocumentosController) Delete() {
	ses, ok := c.RequireSesion(models.RolCandidato)
	if !ok {
		return
	}
	id, err := internalhelpers.ParamInt(c.Ctx, ":id")
	if err != nil {
		c.RespondError(err)
		return
	}
	estado, err := internalservices.EliminarDocumento(c.Ctx, ses, id)
	if err != nil {
		c.RespondError(err)
		return
	}
	c.RespondSuccess(http.StatusOK, "documento eliminado", estado)
}
