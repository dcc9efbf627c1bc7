package controllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	beego "github.com/beego/beego/v2/server/web"

	"github.com/LeitoBarrera/estudios_mid/helpers"
	internalhelpers "github.com/LeitoBarrera/estudios_mid/internal/helpers"
)

// BaseController centraliza la construcción de respuestas estándar y la
// resolución de la sesión.
type BaseController struct {
	beego.Controller
}

// RespondSuccess envuelve un payload en el formato estándar.
func (c *BaseController) RespondSuccess(status int, message string, data interface{}) {
	c.Ctx.Output.SetStatus(status)
	c.Data["json"] = internalhelpers.Ok(status, message, data)
	_ = c.ServeJSON()
}

// RespondError transforma cualquier error en la respuesta estándar.
func (c *BaseController) RespondError(err error) {
	appErr := helpers.AsAppError(err, "error inesperado")
	c.Ctx.Output.SetStatus(appErr.Status)
	c.Data["json"] = internalhelpers.Fail(appErr.Status, appErr.Message)
	_ = c.ServeJSON()
}

// ParseJSONBody deserializa el cuerpo de la petición en out.
func (c *BaseController) ParseJSONBody(out interface{}) error {
	raw := c.Ctx.Input.RequestBody

	if len(raw) == 0 && c.Ctx.Request != nil && c.Ctx.Request.Body != nil {
		b, err := io.ReadAll(c.Ctx.Request.Body)
		if err != nil {
			return err
		}
		raw = b

		// cache + reinyectar
		c.Ctx.Input.RequestBody = b
		c.Ctx.Request.Body = io.NopCloser(bytes.NewBuffer(b))
	}

	return json.Unmarshal(raw, out)
}

// RequireSesion resuelve la sesión y valida el rol; responde 401/403 y corta
// el flujo cuando no alcanza.
func (c *BaseController) RequireSesion(roles ...string) (*internalhelpers.Sesion, bool) {
	ses, err := internalhelpers.RequireRol(c.Ctx, roles...)
	if err != nil {
		status := http.StatusUnauthorized
		if errors.Is(err, internalhelpers.ErrRolInsuficiente) {
			status = http.StatusForbidden
		}
		c.RespondError(helpers.NewAppError(status, err.Error(), nil))
		return nil, false
	}
	return ses, true
}
