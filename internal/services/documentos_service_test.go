package services

import (
	"net/http"
	"strings"
	"testing"

	internaldto "github.com/LeitoBarrera/estudios_mid/internal/dto"
	"github.com/LeitoBarrera/estudios_mid/models"
)

func TestEstadoDocumentosCalculaFaltantes(t *testing.T) {
	conFake(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/documentos/" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		escribirJSON(w, `[
			{"id": 1, "nombre": "frente.png", "tipo": "CC_FRENTE", "archivo_url": "/media/frente.png"},
			{"id": 2, "nombre": "foto.png", "tipo": "FOTO", "archivo_url": "/media/foto.png"}
		]`)
	})
	ctx := nuevoCtx("tok-docs-a")
	ses := sesionDePrueba("tok-docs-a", models.RolCandidato)

	estado, err := EstadoDocumentos(ctx, ses)
	if err != nil {
		t.Fatalf("EstadoDocumentos: %v", err)
	}
	if len(estado.Documentos) != 2 {
		t.Fatalf("documentos = %d", len(estado.Documentos))
	}
	// CC_FRENTE ya está; solo falta el dorso. Los opcionales nunca cuentan.
	if len(estado.Faltantes) != 1 || estado.Faltantes[0].Clave != "CC_DORSO" {
		t.Fatalf("faltantes = %+v", estado.Faltantes)
	}
	if len(estado.Catalogo) != len(models.CatalogoDocumentos) {
		t.Fatalf("el catálogo completo debe viajar al panel")
	}
	if len(estado.Duplicados) != 0 {
		t.Fatalf("sin repetidos no hay duplicados: %+v", estado.Duplicados)
	}
}

func TestEstadoDocumentosAdvierteUnicosRepetidos(t *testing.T) {
	conFake(t, func(w http.ResponseWriter, r *http.Request) {
		escribirJSON(w, `[
			{"id": 1, "nombre": "a.png", "tipo": "FOTO", "archivo_url": "/media/a.png"},
			{"id": 2, "nombre": "b.png", "tipo": "FOTO", "archivo_url": "/media/b.png"},
			{"id": 3, "nombre": "otro1.pdf", "tipo": "OTRO", "archivo_url": "/media/otro1.pdf"},
			{"id": 4, "nombre": "otro2.pdf", "tipo": "OTRO", "archivo_url": "/media/otro2.pdf"}
		]`)
	})
	ctx := nuevoCtx("tok-docs-e")
	ses := sesionDePrueba("tok-docs-e", models.RolCandidato)

	estado, err := EstadoDocumentos(ctx, ses)
	if err != nil {
		t.Fatalf("EstadoDocumentos: %v", err)
	}
	// FOTO es único y está repetido; OTRO es repetible y nunca se advierte.
	if len(estado.Duplicados) != 1 || estado.Duplicados[0].Clave != "FOTO" {
		t.Fatalf("duplicados = %+v", estado.Duplicados)
	}
}

func TestEstadoDocumentosSinNingunoFaltanLosRequeridos(t *testing.T) {
	conFake(t, func(w http.ResponseWriter, r *http.Request) {
		escribirJSON(w, `[]`)
	})
	ctx := nuevoCtx("tok-docs-b")
	ses := sesionDePrueba("tok-docs-b", models.RolCandidato)

	estado, err := EstadoDocumentos(ctx, ses)
	if err != nil {
		t.Fatalf("EstadoDocumentos: %v", err)
	}
	if len(estado.Faltantes) != 2 {
		t.Fatalf("faltantes = %+v", estado.Faltantes)
	}
	if estado.Faltantes[0].Clave != "CC_FRENTE" || estado.Faltantes[1].Clave != "CC_DORSO" {
		t.Fatalf("faltantes fuera del orden del catálogo: %+v", estado.Faltantes)
	}
}

func TestSubirDocumentoTipoDesconocidoEs400(t *testing.T) {
	var llamadas int
	conFake(t, func(w http.ResponseWriter, r *http.Request) {
		llamadas++
		w.WriteHeader(http.StatusNotFound)
	})
	ctx := nuevoCtx("tok-docs-c")
	ses := sesionDePrueba("tok-docs-c", models.RolCandidato)

	_, err := SubirDocumento(ctx, ses, "PASAPORTE", "pasaporte.png", strings.NewReader("png"))
	quiereStatus(t, err, http.StatusBadRequest)

	_, err = SubirDocumento(ctx, ses, "CC_FRENTE", "frente.png", nil)
	quiereStatus(t, err, http.StatusBadRequest)

	if llamadas != 0 {
		t.Fatalf("la validación local no debe tocar el core (%d llamadas)", llamadas)
	}
}

func TestSubirDocumentoNormalizaElTipo(t *testing.T) {
	// El tipo viaja en mayúsculas aunque el panel lo envíe en minúsculas.
	var gotTipo string
	firmada := consentimientoCompleto(t, 210)
	conFake(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/documentos/":
			_ = r.ParseMultipartForm(1 << 20)
			gotTipo = r.FormValue("tipo")
			escribirJSON(w, `{"id": 3, "nombre": "foto.png", "tipo": "FOTO", "archivo_url": "/media/foto.png"}`)
		case r.Method == http.MethodGet && r.URL.Path == "/api/documentos/":
			escribirJSON(w, `[{"id": 3, "nombre": "foto.png", "tipo": "FOTO", "archivo_url": "/media/foto.png"}]`)
		default:
			firmada(w, r)
		}
	})
	ctx := nuevoCtx("tok-docs-d")
	ses := sesionDePrueba("tok-docs-d", models.RolCandidato)

	estado, err := SubirDocumento(ctx, ses, "foto", "foto.png", strings.NewReader("png"))
	if err != nil {
		t.Fatalf("SubirDocumento: %v", err)
	}
	if gotTipo != "FOTO" {
		t.Fatalf("tipo enviado = %q", gotTipo)
	}
	// La respuesta es el estado releído, no solo el documento creado.
	if len(estado.Documentos) != 1 || estado.Documentos[0].ID != 3 {
		t.Fatalf("estado = %+v", estado)
	}
}

// consentimientoCompleto devuelve un handler de respaldo que presenta un
// estudio con el asistente ya completo, para probar mutaciones tras la puerta.
func consentimientoCompleto(t *testing.T, estudioID int64) http.HandlerFunc {
	t.Helper()
	core := &coreConsentimiento{estudioID: estudioID, firmada: true}
	conFake(t, core.handler)
	ctx := nuevoCtx("tok-puerta")
	ses := sesionDePrueba("tok-puerta", models.RolCandidato)
	si := internaldto.AceptacionReq{Aceptado: true}
	if _, err := AceptarHabeas(ctx, ses, estudioID, si); err != nil {
		t.Fatalf("AceptarHabeas: %v", err)
	}
	if _, err := AceptarTerminos(ctx, ses, estudioID, si); err != nil {
		t.Fatalf("AceptarTerminos: %v", err)
	}
	return core.handler
}
