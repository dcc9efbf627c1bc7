package services

import (
	"io"
	"net/http"

	"github.com/beego/beego/v2/server/web/context"

	"github.com/LeitoBarrera/estudios_mid/helpers"
	"github.com/LeitoBarrera/estudios_mid/internal/clients"
	internaldto "github.com/LeitoBarrera/estudios_mid/internal/dto"
	internalhelpers "github.com/LeitoBarrera/estudios_mid/internal/helpers"
)

// Registros académicos y laborales del candidato. El contrato con el core es el
// mismo para ambos: JSON plano sin archivo, multipart cuando hay soporte.
// En creación viaja la llave al estudio activo; en actualización nunca.

// ListarAcademicos trae los registros académicos del candidato.
func ListarAcademicos(ctx *context.Context, ses *internalhelpers.Sesion) ([]map[string]interface{}, error) {
	return listarRegistros(ctx, clients.RecursoAcademicos)
}

// CrearAcademico crea un registro académico, con soporte opcional.
func CrearAcademico(ctx *context.Context, ses *internalhelpers.Sesion, req internaldto.AcademicoReq, fileName string, file io.Reader) (map[string]interface{}, error) {
	estudioID, err := RequiereConsentimientoCompleto(ctx, ses)
	if err != nil {
		return nil, err
	}
	return crearRegistro(ctx, clients.RecursoAcademicos, req.Payload(estudioID), fileName, file)
}

// ActualizarAcademico aplica un parche parcial; jamás reenvía la llave al estudio.
func ActualizarAcademico(ctx *context.Context, ses *internalhelpers.Sesion, id int64, req internaldto.AcademicoReq, fileName string, file io.Reader) (map[string]interface{}, error) {
	if _, err := RequiereConsentimientoCompleto(ctx, ses); err != nil {
		return nil, err
	}
	return actualizarRegistro(ctx, clients.RecursoAcademicos, id, req.Payload(0), fileName, file)
}

// EliminarAcademico elimina un registro académico.
func EliminarAcademico(ctx *context.Context, ses *internalhelpers.Sesion, id int64) error {
	if _, err := RequiereConsentimientoCompleto(ctx, ses); err != nil {
		return err
	}
	return eliminarRegistro(ctx, clients.RecursoAcademicos, id)
}

// ListarLaborales trae las experiencias laborales del candidato.
func ListarLaborales(ctx *context.Context, ses *internalhelpers.Sesion) ([]map[string]interface{}, error) {
	return listarRegistros(ctx, clients.RecursoLaborales)
}

// CrearLaboral crea una experiencia laboral, con certificado opcional.
func CrearLaboral(ctx *context.Context, ses *internalhelpers.Sesion, req internaldto.LaboralReq, fileName string, file io.Reader) (map[string]interface{}, error) {
	estudioID, err := RequiereConsentimientoCompleto(ctx, ses)
	if err != nil {
		return nil, err
	}
	return crearRegistro(ctx, clients.RecursoLaborales, req.Payload(estudioID), fileName, file)
}

// ActualizarLaboral aplica un parche parcial; jamás reenvía la llave al estudio.
func ActualizarLaboral(ctx *context.Context, ses *internalhelpers.Sesion, id int64, req internaldto.LaboralReq, fileName string, file io.Reader) (map[string]interface{}, error) {
	if _, err := RequiereConsentimientoCompleto(ctx, ses); err != nil {
		return nil, err
	}
	return actualizarRegistro(ctx, clients.RecursoLaborales, id, req.Payload(0), fileName, file)
}

// EliminarLaboral elimina una experiencia laboral.
func EliminarLaboral(ctx *context.Context, ses *internalhelpers.Sesion, id int64) error {
	if _, err := RequiereConsentimientoCompleto(ctx, ses); err != nil {
		return err
	}
	return eliminarRegistro(ctx, clients.RecursoLaborales, id)
}

func listarRegistros(ctx *context.Context, recurso clients.RecursoRegistro) ([]map[string]interface{}, error) {
	rows, err := clients.Core().ListRegistros(requestContext(ctx), internalhelpers.CopyRequestHeaders(ctx), recurso)
	if err != nil {
		return nil, helpers.AsAppError(err, "error consultando registros")
	}
	return rows, nil
}

func crearRegistro(ctx *context.Context, recurso clients.RecursoRegistro, payload map[string]interface{}, fileName string, file io.Reader) (map[string]interface{}, error) {
	if len(payload) == 0 {
		return nil, helpers.NewAppError(http.StatusBadRequest, "cuerpo vacío", nil)
	}
	row, err := clients.Core().CreateRegistro(requestContext(ctx), internalhelpers.CopyRequestHeaders(ctx), recurso, payload, internaldto.FormFields(payload), fileName, file)
	if err != nil {
		return nil, helpers.AsAppError(err, "error creando el registro")
	}
	return row, nil
}

func actualizarRegistro(ctx *context.Context, recurso clients.RecursoRegistro, id int64, payload map[string]interface{}, fileName string, file io.Reader) (map[string]interface{}, error) {
	row, err := clients.Core().UpdateRegistro(requestContext(ctx), internalhelpers.CopyRequestHeaders(ctx), recurso, id, payload, internaldto.FormFields(payload), fileName, file)
	if err != nil {
		return nil, helpers.AsAppError(err, "error guardando el registro")
	}
	return row, nil
}

func eliminarRegistro(ctx *context.Context, recurso clients.RecursoRegistro, id int64) error {
	if err := clients.Core().DeleteRegistro(requestContext(ctx), internalhelpers.CopyRequestHeaders(ctx), recurso, id); err != nil {
		return helpers.AsAppError(err, "error eliminando el registro")
	}
	return nil
}
