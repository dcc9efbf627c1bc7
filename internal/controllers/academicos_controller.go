package controllers

import (
	"io"
	"net/http"

	rootcontrollers "github.com/LeitoBarrera/estudios_mid/controllers"
	internaldto "github.com/LeitoBarrera/estudios_mid/internal/dto"
	internalhelpers "github.com/LeitoBarrera/estudios_mid/internal/helpers"
	internalservices "github.com/LeitoBarrera/estudios_mid/internal/services"
	"github.com/LeitoBarrera/estudios_mid/models"
)

// AcademicosController gestiona los registros académicos del candidato.
type AcademicosController struct {
	rootcontrollers.BaseController
}

// GetAll lista los registros académicos.
// @router /v1/academicos [get]
func (c *AcademicosController) GetAll() {
	ses, ok := c.RequireSesion(models.RolCandidato)
	if !ok {
		return
	}
	rows, err := internalservices.ListarAcademicos(c.Ctx, ses)
	if err != nil {
		c.RespondError(err)
		return
	}
	c.RespondSuccess(http.StatusOK, "OK", rows)
}

// Post crea un registro académico. Con soporte adjunto la petición es
// multipart; sin él, JSON plano.
// @router /v1/academicos [post]
func (c *AcademicosController) Post() {
	ses, ok := c.RequireSesion(models.RolCandidato)
	if !ok {
		return
	}
	req, fileName, file, err := c.parseAcademico()
	if err != nil {
		c.RespondError(err)
		return
	}
	row, err := internalservices.CrearAcademico(c.Ctx, ses, req, fileName, file)
	if err != nil {
		c.RespondError(err)
		return
	}
	c.RespondSuccess(http.StatusCreated, "registro creado", row)
}

// Patch actualiza un registro académico.
// @router /v1/academicos/:id [patch]
func (c *AcademicosController) Patch() {
	ses, ok := c.RequireSesion(models.RolCandidato)
	if !ok {
		return
	}
	id, err := internalhelpers.ParamInt(c.Ctx, ":id")
	if err != nil {
		c.RespondError(err)
		return
	}
	req, fileName, file, err := c.parseAcademico()
	if err != nil {
		c.RespondError(err)
		return
	}
	row, err := internalservices.ActualizarAcademico(c.Ctx, ses, id, req, fileName, file)
	if err != nil {
		c.RespondError(err)
		return
	}
	c.RespondSuccess(http.StatusOK, "registro actualizado", row)
}

// Delete elimina un registro académico. La confirmación es del cliente; aquí
// llega exactamente una llamada por acción.
// @router /v1/academicos/:id [delete]
func (c *AcademicosController) Delete() {
	ses, ok := c.RequireSesion(models.RolCandidato)
	if !ok {
		return
	}
	id, err := internalhelpers.ParamInt(c.Ctx, ":id")
	if err != nil {
		c.RespondError(err)
		return
	}
	if err := internalservices.EliminarAcademico(c.Ctx, ses, id); err != nil {
		c.RespondError(err)
		return
	}
	c.RespondSuccess(http.StatusOK, "registro eliminado", nil)
}

func (c *AcademicosController) parseAcademico() (internaldto.AcademicoReq, string, io.Reader, error) {
	var req internaldto.AcademicoReq

	if !esMultipart(c.Ctx.Request) {
		err := c.ParseJSONBody(&req)
		return req, "", nil, err
	}

	values, err := valoresForm(c.Ctx.Request)
	if err != nil {
		return req, "", nil, err
	}
	req.Titulo = strPtr(values, "titulo")
	req.Institucion = strPtr(values, "institucion")
	req.FechaGraduacion = strPtr(values, "fecha_graduacion")
	req.Ciudad = strPtr(values, "ciudad")
	req.PresentaOriginal = boolPtr(values, "presenta_original")
	req.Grado = strPtr(values, "grado")
	req.ActaNumero = strPtr(values, "acta_numero")
	req.FolioNumero = strPtr(values, "folio_numero")
	req.LibroRegistro = strPtr(values, "libro_registro")
	req.Rector = strPtr(values, "rector")
	req.Secretario = strPtr(values, "secretario")
	req.Concepto = strPtr(values, "concepto")

	file, header, err := c.GetFile("archivo")
	if err == http.ErrMissingFile {
		return req, "", nil, nil
	}
	if err != nil {
		return req, "", nil, err
	}
	return req, header.Filename, file, nil
}
