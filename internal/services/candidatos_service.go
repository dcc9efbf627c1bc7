package services

import (
	"github.com/beego/beego/v2/server/web/context"

	"github.com/LeitoBarrera/estudios_mid/helpers"
	"github.com/LeitoBarrera/estudios_mid/internal/clients"
	internaldto "github.com/LeitoBarrera/estudios_mid/internal/dto"
	internalhelpers "github.com/LeitoBarrera/estudios_mid/internal/helpers"
)

// ObtenerBio trae la hoja de vida del candidato autenticado.
func ObtenerBio(ctx *context.Context, ses *internalhelpers.Sesion) (map[string]interface{}, error) {
	bio, err := clients.Core().GetCandidatoMe(requestContext(ctx), internalhelpers.CopyRequestHeaders(ctx))
	if err != nil {
		return nil, helpers.AsAppError(err, "error consultando la hoja de vida")
	}
	return bio, nil
}

// ActualizarBio aplica un parche parcial sobre la hoja de vida. Requiere el
// consentimiento completo; el cuerpo tipado garantiza que solo viajen campos
// admitidos y que las fechas vacías lleguen como null.
func ActualizarBio(ctx *context.Context, ses *internalhelpers.Sesion, patch internaldto.CandidatoBioPatch) (map[string]interface{}, error) {
	if _, err := RequiereConsentimientoCompleto(ctx, ses); err != nil {
		return nil, err
	}
	payload := patch.Payload()
	if len(payload) == 0 {
		return ObtenerBio(ctx, ses)
	}
	bio, err := clients.Core().PatchCandidatoMe(requestContext(ctx), internalhelpers.CopyRequestHeaders(ctx), payload)
	if err != nil {
		return nil, helpers.AsAppError(err, "error guardando la hoja de vida")
	}
	return bio, nil
}
