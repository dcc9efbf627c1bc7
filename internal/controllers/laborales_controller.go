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

// LaboralesController gestiona las experiencias laborales del candidato.
type LaboralesController struct {
	rootcontrollers.BaseController
}

// GetAll lista las experiencias laborales.
// @router /v1/laborales [get]
func (c *LaboralesController) GetAll() {
	ses, ok := c.RequireSesion(models.RolCandidato)
	if !ok {
		return
	}
	rows, err := internalservices.ListarLaborales(c.Ctx, ses)
	if err != nil {
		c.RespondError(err)
		return
	}
	c.RespondSuccess(http.StatusOK, "OK", rows)
}

// Post crea una experiencia laboral, con certificado opcional.
// @router /v1/laborales [post]
func (c *LaboralesController) Post() {
	ses, ok := c.RequireSesion(models.RolCandidato)
	if !ok {
		return
	}
	req, fileName, file, err := c.parseLaboral()
	if err != nil {
		c.RespondError(err)
		return
	}
	row, err := internalservices.CrearLaboral(c.Ctx, ses, req, fileName, file)
	if err != nil {
		c.RespondError(err)
		return
	}
	c.RespondSuccess(http.StatusCreated, "registro creado", row)
}

// Patch actualiza una experiencia laboral.
// @router /v1/laborales/:id [patch]
func (c *LaboralesController) Patch() {
	ses, ok := c.RequireSesion(models.RolCandidato)
	if !ok {
		return
	}
	id, err := internalhelpers.ParamInt(c.Ctx, ":id")
	if err != nil {
		c.RespondError(err)
		return
	}
	req, fileName, file, err := c.parseLaboral()
	if err != nil {
		c.RespondError(err)
		return
	}
	row, err := internalservices.ActualizarLaboral(c.Ctx, ses, id, req, fileName, file)
	if err != nil {
		c.RespondError(err)
		return
	}
	c.RespondSuccess(http.StatusOK, "registro actualizado", row)
}

// Delete elimina una experiencia laboral.
// @router /v1/laborales/:id [delete]
func (c *LaboralesController) Delete() {
	ses, ok := c.RequireSesion(models.RolCandidato)
	if !ok {
		return
	}
	id, err := internalhelpers.ParamInt(c.Ctx, ":id")
	if err != nil {
		c.RespondError(err)
		return
	}
	if err := internalservices.EliminarLaboral(c.Ctx, ses, id); err != nil {
		c.RespondError(err)
		return
	}
	c.RespondSuccess(http.StatusOK, "registro eliminado", nil)
}

func (c *LaboralesController) parseLaboral() (internaldto.LaboralReq, string, io.Reader, error) {
	var req internaldto.LaboralReq

	if !esMultipart(c.Ctx.Request) {
		err := c.ParseJSONBody(&req)
		return req, "", nil, err
	}

	values, err := valoresForm(c.Ctx.Request)
	if err != nil {
		return req, "", nil, err
	}
	req.Empresa = strPtr(values, "empresa")
	req.Cargo = strPtr(values, "cargo")
	req.Telefono = strPtr(values, "telefono")
	req.EmailContacto = strPtr(values, "email_contacto")
	req.Direccion = strPtr(values, "direccion")
	req.Ingreso = strPtr(values, "ingreso")
	req.Retiro = strPtr(values, "retiro")
	req.MotivoRetiro = strPtr(values, "motivo_retiro")
	req.TipoContrato = strPtr(values, "tipo_contrato")
	req.JefeInmediato = strPtr(values, "jefe_inmediato")
	req.VerificadaCamara = boolPtr(values, "verificada_camara")
	req.VolveriaContratar = boolPtr(values, "volveria_contratar")
	req.Concepto = strPtr(values, "concepto")

	file, header, err := c.GetFile("certificado")
	if err == http.ErrMissingFile {
		return req, "", nil, nil
	}
	if err != nil {
		return req, "", nil, err
	}
	return req, header.Filename, file, nil
}
