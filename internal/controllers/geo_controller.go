package controllers

import (
	"net/http"

	rootcontrollers "github.com/LeitoBarrera/estudios_mid/controllers"
	internalservices "github.com/LeitoBarrera/estudios_mid/internal/services"
)

// GeoController expone departamentos y municipios para los selectores de la
// hoja de vida.
type GeoController struct {
	rootcontrollers.BaseController
}

// GetDepartamentos lista departamentos, con filtro opcional ?q=.
// @router /v1/geo/departamentos [get]
func (c *GeoController) GetDepartamentos() {
	if _, ok := c.RequireSesion(); !ok {
		return
	}
	lugares, err := internalservices.Departamentos(c.Ctx, c.GetString("q"))
	if err != nil {
		c.RespondError(err)
		return
	}
	c.RespondSuccess(http.StatusOK, "OK", lugares)
}

// GetMunicipios lista municipios de un departamento (?dep_id=, ?q=).
// @router /v1/geo/municipios [get]
func (c *GeoController) GetMunicipios() {
	if _, ok := c.RequireSesion(); !ok {
		return
	}
	lugares, err := internalservices.Municipios(c.Ctx, c.GetString("dep_id"), c.GetString("q"))
	if err != nil {
		c.RespondError(err)
		return
	}
	c.RespondSuccess(http.StatusOK, "OK", lugares)
}
