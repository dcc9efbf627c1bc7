package services

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/beego/beego/v2/server/web/context"

	"github.com/LeitoBarrera/estudios_mid/helpers"
	"github.com/LeitoBarrera/estudios_mid/internal/clients"
	internaldto "github.com/LeitoBarrera/estudios_mid/internal/dto"
	internalhelpers "github.com/LeitoBarrera/estudios_mid/internal/helpers"
	"github.com/LeitoBarrera/estudios_mid/models"
)

// Flujo de revisión del analista. Toda mutación devuelve el estudio releído
// completo: el estado local nunca se parchea a mano, se reemplaza con lo que
// el core confirma.

// ListarEstudios trae los estudios visibles, con filtros opcionales de query.
func ListarEstudios(ctx *context.Context, ses *internalhelpers.Sesion, filtros url.Values) ([]models.Estudio, error) {
	estudios, err := clients.Core().ListEstudios(requestContext(ctx), internalhelpers.CopyRequestHeaders(ctx), filtros)
	if err != nil {
		return nil, helpers.AsAppError(err, "error consultando estudios")
	}
	return estudios, nil
}

// DetalleEstudio trae un estudio con su checklist completo.
func DetalleEstudio(ctx *context.Context, ses *internalhelpers.Sesion, id int64) (*models.Estudio, error) {
	estudio, err := clients.Core().GetEstudio(requestContext(ctx), internalhelpers.CopyRequestHeaders(ctx), id)
	if err != nil {
		return nil, helpers.AsAppError(err, "error consultando el estudio")
	}
	return estudio, nil
}

// AbrirPorSolicitud resuelve el enlace profundo ?open=<solicitud>: busca el
// estudio cuya solicitud coincida y devuelve su detalle.
func AbrirPorSolicitud(ctx *context.Context, ses *internalhelpers.Sesion, solicitudID int64) (*models.Estudio, error) {
	estudios, err := ListarEstudios(ctx, ses, nil)
	if err != nil {
		return nil, err
	}
	for _, e := range estudios {
		if e.SolicitudID == solicitudID {
			return DetalleEstudio(ctx, ses, e.ID)
		}
	}
	return nil, helpers.NewAppError(http.StatusNotFound, "no hay estudio para esa solicitud", nil)
}

// ResumenEstudio trae la vista agregada del estudio.
func ResumenEstudio(ctx *context.Context, ses *internalhelpers.Sesion, id int64) (*models.ResumenEstudio, error) {
	resumen, err := clients.Core().GetResumen(requestContext(ctx), internalhelpers.CopyRequestHeaders(ctx), id)
	if err != nil {
		return nil, helpers.AsAppError(err, "error consultando el resumen")
	}
	return resumen, nil
}

// ResumenPDF reenvía el PDF del resumen tal como lo genera el core.
func ResumenPDF(ctx *context.Context, ses *internalhelpers.Sesion, id int64) ([]byte, string, error) {
	body, contentType, err := clients.Core().GetResumenPDF(requestContext(ctx), internalhelpers.CopyRequestHeaders(ctx), id)
	if err != nil {
		return nil, "", helpers.AsAppError(err, "error descargando el resumen")
	}
	return body, contentType, nil
}

// ValidarItem valida un ítem individual y devuelve el estudio releído.
func ValidarItem(ctx *context.Context, ses *internalhelpers.Sesion, estudioID, itemID int64, req internaldto.ValidarItemReq) (*models.Estudio, error) {
	if err := clients.Core().ValidarItem(requestContext(ctx), internalhelpers.CopyRequestHeaders(ctx), itemID, req); err != nil {
		return nil, helpers.AsAppError(err, "error validando el ítem")
	}
	return DetalleEstudio(ctx, ses, estudioID)
}

// MarcarHallazgo marca un ítem con hallazgo y devuelve el estudio releído.
// El comentario es obligatorio: un hallazgo sin sustento no le sirve a nadie.
func MarcarHallazgo(ctx *context.Context, ses *internalhelpers.Sesion, estudioID, itemID int64, req internaldto.HallazgoReq) (*models.Estudio, error) {
	if strings.TrimSpace(req.Comentario) == "" {
		return nil, helpers.NewAppError(http.StatusBadRequest, "comentario requerido para un hallazgo", nil)
	}
	if err := clients.Core().MarcarHallazgo(requestContext(ctx), internalhelpers.CopyRequestHeaders(ctx), itemID, req); err != nil {
		return nil, helpers.AsAppError(err, "error marcando el hallazgo")
	}
	return DetalleEstudio(ctx, ses, estudioID)
}

// ValidarMasivo valida los ítems indicados en una sola llamada y devuelve el
// estudio releído. Solo viajan los ítems que el analista marcó.
func ValidarMasivo(ctx *context.Context, ses *internalhelpers.Sesion, estudioID int64, req internaldto.ValidacionMasivaReq) (*models.Estudio, error) {
	if len(req.Items) == 0 {
		return nil, helpers.NewAppError(http.StatusBadRequest, "no hay ítems para validar", nil)
	}
	for _, it := range req.Items {
		if it.ID <= 0 {
			return nil, helpers.NewAppError(http.StatusBadRequest, "ítem sin id", nil)
		}
	}
	if _, err := clients.Core().ValidarMasivo(requestContext(ctx), internalhelpers.CopyRequestHeaders(ctx), estudioID, req); err != nil {
		return nil, helpers.AsAppError(err, "error en la validación masiva")
	}
	return DetalleEstudio(ctx, ses, estudioID)
}

// AgregarItem crea un ítem del tipo dado y devuelve el estudio releído.
func AgregarItem(ctx *context.Context, ses *internalhelpers.Sesion, estudioID int64, req internaldto.AgregarItemReq) (*models.Estudio, error) {
	tipo := strings.TrimSpace(strings.ToUpper(req.Tipo))
	if !models.EsTipoItem(tipo) {
		return nil, helpers.NewAppError(http.StatusBadRequest, "tipo de ítem no admitido", nil)
	}
	if _, err := clients.Core().AgregarItem(requestContext(ctx), internalhelpers.CopyRequestHeaders(ctx), estudioID, tipo); err != nil {
		return nil, helpers.AsAppError(err, "error agregando el ítem")
	}
	return DetalleEstudio(ctx, ses, estudioID)
}
