package services

import (
	"io"
	"net/http"
	"strings"

	"github.com/beego/beego/v2/server/web/context"

	"github.com/LeitoBarrera/estudios_mid/helpers"
	"github.com/LeitoBarrera/estudios_mid/internal/clients"
	internaldto "github.com/LeitoBarrera/estudios_mid/internal/dto"
	internalhelpers "github.com/LeitoBarrera/estudios_mid/internal/helpers"
	"github.com/LeitoBarrera/estudios_mid/models"
)

// EstadoDocumentos lista los soportes del candidato y calcula qué tipos
// requeridos faltan según el catálogo fijo.
func EstadoDocumentos(ctx *context.Context, ses *internalhelpers.Sesion) (*internaldto.DocumentosEstado, error) {
	docs, err := clients.Core().ListDocumentos(requestContext(ctx), internalhelpers.CopyRequestHeaders(ctx))
	if err != nil {
		return nil, helpers.AsAppError(err, "error consultando documentos")
	}
	return &internaldto.DocumentosEstado{
		Documentos: docs,
		Catalogo:   models.CatalogoDocumentos,
		Faltantes:  calcularFaltantes(docs),
		Duplicados: calcularDuplicados(docs),
	}, nil
}

// SubirDocumento valida el tipo contra el catálogo, sube el archivo y devuelve
// el estado completo releído del core.
func SubirDocumento(ctx *context.Context, ses *internalhelpers.Sesion, tipo, fileName string, file io.Reader) (*internaldto.DocumentosEstado, error) {
	tipo = strings.TrimSpace(strings.ToUpper(tipo))
	if !models.TipoDocumentoValido(tipo) {
		return nil, helpers.NewAppError(http.StatusBadRequest, "tipo de documento no admitido", nil)
	}
	if file == nil {
		return nil, helpers.NewAppError(http.StatusBadRequest, "archivo requerido", nil)
	}
	if _, err := RequiereConsentimientoCompleto(ctx, ses); err != nil {
		return nil, err
	}

	if _, err := clients.Core().UploadDocumento(requestContext(ctx), internalhelpers.CopyRequestHeaders(ctx), tipo, fileName, file); err != nil {
		return nil, helpers.AsAppError(err, "error subiendo el documento")
	}
	return EstadoDocumentos(ctx, ses)
}

// EliminarDocumento borra un soporte y devuelve el estado releído.
func EliminarDocumento(ctx *context.Context, ses *internalhelpers.Sesion, id int64) (*internaldto.DocumentosEstado, error) {
	if _, err := RequiereConsentimientoCompleto(ctx, ses); err != nil {
		return nil, err
	}
	if err := clients.Core().DeleteDocumento(requestContext(ctx), internalhelpers.CopyRequestHeaders(ctx), id); err != nil {
		return nil, helpers.AsAppError(err, "error eliminando el documento")
	}
	return EstadoDocumentos(ctx, ses)
}

// calcularFaltantes devuelve los tipos requeridos sin documento presente, en el
// orden del catálogo.
func calcularFaltantes(docs []models.Documento) []models.TipoDocumento {
	conteo := contarPorTipo(docs)
	faltantes := []models.TipoDocumento{}
	for _, t := range models.CatalogoDocumentos {
		if t.Requerido && conteo[t.Clave] == 0 {
			faltantes = append(faltantes, t)
		}
	}
	return faltantes
}

// calcularDuplicados devuelve los tipos únicos con más de un documento. La
// advertencia es de la UI; el core admite los repetidos.
func calcularDuplicados(docs []models.Documento) []models.TipoDocumento {
	conteo := contarPorTipo(docs)
	duplicados := []models.TipoDocumento{}
	for _, t := range models.CatalogoDocumentos {
		if t.Unico && conteo[t.Clave] > 1 {
			duplicados = append(duplicados, t)
		}
	}
	return duplicados
}

func contarPorTipo(docs []models.Documento) map[string]int {
	conteo := make(map[string]int, len(docs))
	for _, d := range docs {
		conteo[strings.ToUpper(strings.TrimSpace(d.Tipo))]++
	}
	return conteo
}
