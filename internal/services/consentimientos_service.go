package services

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"
	"sync"

	"github.com/beego/beego/v2/server/web/context"

	"github.com/LeitoBarrera/estudios_mid/helpers"
	"github.com/LeitoBarrera/estudios_mid/internal/clients"
	internaldto "github.com/LeitoBarrera/estudios_mid/internal/dto"
	internalhelpers "github.com/LeitoBarrera/estudios_mid/internal/helpers"
	"github.com/LeitoBarrera/estudios_mid/internal/store"
	rootservices "github.com/LeitoBarrera/estudios_mid/services"
)

// Asistente de consentimiento en tres pasos con orden estricto:
// 1. firma de la autorización, 2. habeas data, 3. términos y condiciones.
// El paso 1 vive en el core (firmar_autorizacion); los pasos 2 y 3 se
// registran aquí mientras el core no los persista. Una transición fuera de
// orden se rechaza sin tocar el estado.

var (
	consentStore     *store.ConsentStore
	consentStoreOnce sync.Once
	consentStoreErr  error
)

func getConsentStore() (*store.ConsentStore, error) {
	consentStoreOnce.Do(func() {
		consentStore, consentStoreErr = store.NewConsentStore(rootservices.GetConfig().ConsentsDir)
	})
	if consentStoreErr != nil {
		return nil, helpers.NewAppError(http.StatusInternalServerError, "registro de consentimientos no disponible", consentStoreErr)
	}
	return consentStore, nil
}

// EstadoConsentimiento arma la vista del asistente combinando la autorización
// del core con el registro local de los pasos 2 y 3.
func EstadoConsentimiento(ctx *context.Context, ses *internalhelpers.Sesion, estudioID int64) (*internaldto.ConsentimientoEstado, error) {
	st, err := getConsentStore()
	if err != nil {
		return nil, err
	}

	resumen, err := clients.Core().GetResumen(requestContext(ctx), internalhelpers.CopyRequestHeaders(ctx), estudioID)
	if err != nil {
		return nil, helpers.AsAppError(err, "error consultando el estudio")
	}

	reg, err := st.Get(estudioID)
	if err != nil {
		return nil, helpers.AsAppError(err, "error leyendo el registro de consentimientos")
	}

	estado := &internaldto.ConsentimientoEstado{
		EstudioID:     estudioID,
		Firmado:       resumen.Autorizacion.Firmada,
		FirmaFecha:    resumen.Autorizacion.Fecha,
		FirmaRecibo:   reg.FirmaRecibo,
		Habeas:        reg.Habeas,
		HabeasFecha:   reg.HabeasFecha,
		Terminos:      reg.Terminos,
		TerminosFecha: reg.TerminosFecha,
	}
	switch {
	case !estado.Firmado:
		estado.PasoActual = internaldto.PasoFirma
	case !estado.Habeas:
		estado.PasoActual = internaldto.PasoHabeas
	case !estado.Terminos:
		estado.PasoActual = internaldto.PasoTerminos
	default:
		estado.PasoActual = internaldto.PasoTerminos
		estado.Completado = true
	}
	return estado, nil
}

// FirmarConsentimiento ejecuta el paso 1: exige la imagen de la firma, la
// registra en el core y guarda localmente un recibo (hash) de lo firmado.
func FirmarConsentimiento(ctx *context.Context, ses *internalhelpers.Sesion, estudioID int64, req internaldto.FirmaReq) (*internaldto.ConsentimientoEstado, error) {
	firma := strings.TrimSpace(req.FirmaBase64)
	if firma == "" {
		return nil, helpers.NewAppError(http.StatusBadRequest, "se requiere la imagen de la firma", nil)
	}
	if !strings.HasPrefix(firma, "data:image") {
		return nil, helpers.NewAppError(http.StatusBadRequest, "formato de firma inválido", nil)
	}

	estado, err := EstadoConsentimiento(ctx, ses, estudioID)
	if err != nil {
		return nil, err
	}
	if estado.Firmado {
		// Firmar dos veces no cambia nada; se devuelve el estado vigente.
		return estado, nil
	}

	st, err := getConsentStore()
	if err != nil {
		return nil, err
	}

	if err := clients.Core().FirmarAutorizacion(requestContext(ctx), internalhelpers.CopyRequestHeaders(ctx), estudioID); err != nil {
		return nil, helpers.AsAppError(err, "error firmando la autorización")
	}

	// El user agent acompaña el recibo; si el cuerpo no lo trae se toma el de
	// la petición.
	ua := strings.TrimSpace(req.UserAgent)
	if ua == "" && ctx != nil && ctx.Request != nil {
		ua = ctx.Request.UserAgent()
	}

	sum := sha256.Sum256([]byte(firma))
	if _, err := st.GuardarFirma(estudioID, hex.EncodeToString(sum[:]), ua); err != nil {
		return nil, helpers.AsAppError(err, "error guardando el recibo de la firma")
	}
	return EstadoConsentimiento(ctx, ses, estudioID)
}

// AceptarHabeas ejecuta el paso 2; requiere la autorización firmada.
func AceptarHabeas(ctx *context.Context, ses *internalhelpers.Sesion, estudioID int64, req internaldto.AceptacionReq) (*internaldto.ConsentimientoEstado, error) {
	if !req.Aceptado {
		return nil, helpers.NewAppError(http.StatusBadRequest, "debe aceptar el tratamiento de datos", nil)
	}
	estado, err := EstadoConsentimiento(ctx, ses, estudioID)
	if err != nil {
		return nil, err
	}
	if !estado.Firmado {
		return nil, helpers.NewAppError(http.StatusConflict, "primero debe firmar la autorización", nil)
	}
	if estado.Habeas {
		return estado, nil
	}

	st, err := getConsentStore()
	if err != nil {
		return nil, err
	}
	if _, err := st.AceptarHabeas(estudioID); err != nil {
		return nil, helpers.AsAppError(err, "error registrando habeas data")
	}
	return EstadoConsentimiento(ctx, ses, estudioID)
}

// AceptarTerminos ejecuta el paso 3; requiere los pasos 1 y 2 completos.
func AceptarTerminos(ctx *context.Context, ses *internalhelpers.Sesion, estudioID int64, req internaldto.AceptacionReq) (*internaldto.ConsentimientoEstado, error) {
	if !req.Aceptado {
		return nil, helpers.NewAppError(http.StatusBadRequest, "debe aceptar los términos y condiciones", nil)
	}
	estado, err := EstadoConsentimiento(ctx, ses, estudioID)
	if err != nil {
		return nil, err
	}
	if !estado.Firmado {
		return nil, helpers.NewAppError(http.StatusConflict, "primero debe firmar la autorización", nil)
	}
	if !estado.Habeas {
		return nil, helpers.NewAppError(http.StatusConflict, "primero debe aceptar habeas data", nil)
	}
	if estado.Terminos {
		return estado, nil
	}

	st, err := getConsentStore()
	if err != nil {
		return nil, err
	}
	if _, err := st.AceptarTerminos(estudioID); err != nil {
		return nil, helpers.AsAppError(err, "error registrando términos")
	}
	return EstadoConsentimiento(ctx, ses, estudioID)
}

// RequiereConsentimientoCompleto bloquea mutaciones del candidato mientras el
// asistente no esté completo. Devuelve el estudio activo para reutilizarlo.
func RequiereConsentimientoCompleto(ctx *context.Context, ses *internalhelpers.Sesion) (int64, error) {
	estudioID, err := EstudioActivo(ctx, ses)
	if err != nil {
		return 0, err
	}
	estado, err := EstadoConsentimiento(ctx, ses, estudioID)
	if err != nil {
		return 0, err
	}
	if !estado.Completado {
		return 0, helpers.NewAppError(http.StatusForbidden, "debe completar el consentimiento antes de continuar", nil)
	}
	return estudioID, nil
}

// EstudioActivo resuelve el estudio vigente del candidato autenticado.
func EstudioActivo(ctx *context.Context, ses *internalhelpers.Sesion) (int64, error) {
	estudios, err := clients.Core().ListEstudios(requestContext(ctx), internalhelpers.CopyRequestHeaders(ctx), nil)
	if err != nil {
		return 0, helpers.AsAppError(err, "error consultando estudios")
	}
	if len(estudios) == 0 {
		return 0, helpers.NewAppError(http.StatusNotFound, "no se encontró un estudio activo para asociar", nil)
	}
	return estudios[0].ID, nil
}
