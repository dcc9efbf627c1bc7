package services

import (
	"net/http"
	"strings"

	"github.com/beego/beego/v2/server/web/context"

	"github.com/LeitoBarrera/estudios_mid/helpers"
	"github.com/LeitoBarrera/estudios_mid/internal/clients"
	internaldto "github.com/LeitoBarrera/estudios_mid/internal/dto"
	internalhelpers "github.com/LeitoBarrera/estudios_mid/internal/helpers"
	"github.com/LeitoBarrera/estudios_mid/models"
)

// Operaciones del tablero del cliente sobre sus solicitudes de estudio.

// requiereEmpresa corta las acciones de un CLIENTE sin empresa asociada con el
// mensaje de guía, en lugar de dejar pasar la llamada y mostrar el error crudo
// del core.
func requiereEmpresa(ses *internalhelpers.Sesion) error {
	if strings.EqualFold(strings.TrimSpace(ses.Perfil.Rol), models.RolCliente) && ses.Perfil.EmpresaID == nil {
		return helpers.NewAppError(http.StatusForbidden,
			"su usuario CLIENTE no tiene empresa asociada; pida al administrador asignarle una", nil)
	}
	return nil
}

// ListarSolicitudes trae las solicitudes visibles para la sesión.
func ListarSolicitudes(ctx *context.Context, ses *internalhelpers.Sesion) ([]internaldto.SolicitudDTO, error) {
	rows, err := clients.Core().ListSolicitudes(requestContext(ctx), internalhelpers.CopyRequestHeaders(ctx))
	if err != nil {
		return nil, helpers.AsAppError(err, "error consultando solicitudes")
	}
	return rows, nil
}

// CrearSolicitud da de alta una solicitud con su candidato; el core crea el
// estudio asociado en la misma operación.
func CrearSolicitud(ctx *context.Context, ses *internalhelpers.Sesion, req internaldto.SolicitudCreateReq) (*internaldto.SolicitudDTO, error) {
	if err := requiereEmpresa(ses); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Candidato.Cedula) == "" {
		return nil, helpers.NewAppError(http.StatusBadRequest, "cédula del candidato requerida", nil)
	}
	email := strings.TrimSpace(req.Candidato.Email)
	if email == "" {
		return nil, helpers.NewAppError(http.StatusBadRequest, "email del candidato requerido", nil)
	}
	if !strings.Contains(email, "@") || strings.HasPrefix(email, "@") || strings.HasSuffix(email, "@") {
		return nil, helpers.NewAppError(http.StatusBadRequest, "email del candidato inválido", nil)
	}
	row, err := clients.Core().CreateSolicitud(requestContext(ctx), internalhelpers.CopyRequestHeaders(ctx), req)
	if err != nil {
		return nil, helpers.AsAppError(err, "error creando la solicitud")
	}
	return row, nil
}

// InvitarCandidato dispara la invitación por correo al portal del candidato.
func InvitarCandidato(ctx *context.Context, ses *internalhelpers.Sesion, solicitudID int64) (*internaldto.InvitacionResp, error) {
	if err := requiereEmpresa(ses); err != nil {
		return nil, err
	}
	resp, err := clients.Core().InvitarCandidato(requestContext(ctx), internalhelpers.CopyRequestHeaders(ctx), solicitudID)
	if err != nil {
		return nil, helpers.AsAppError(err, "error enviando la invitación")
	}
	return resp, nil
}
