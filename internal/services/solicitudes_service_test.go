package services

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	internaldto "github.com/LeitoBarrera/estudios_mid/internal/dto"
	internalhelpers "github.com/LeitoBarrera/estudios_mid/internal/helpers"
	"github.com/LeitoBarrera/estudios_mid/models"
)

// sesionCliente arma una sesión CLIENTE con empresa asignada.
func sesionCliente(token string) *internalhelpers.Sesion {
	ses := sesionDePrueba(token, models.RolCliente)
	empresa := int64(3)
	ses.Perfil.EmpresaID = &empresa
	return ses
}

func TestCrearSolicitudValidaCandidato(t *testing.T) {
	var llamadas int
	conFake(t, func(w http.ResponseWriter, r *http.Request) {
		llamadas++
		w.WriteHeader(http.StatusNotFound)
	})
	ctx := nuevoCtx("tok-sol-a")
	ses := sesionCliente("tok-sol-a")

	// Sin cédula, sin email o con email malformado: nada viaja al core.
	casos := []internaldto.CandidatoNuevo{
		{Nombre: "Ana", Email: "ana@acme.co"},
		{Nombre: "Ana", Cedula: "123"},
		{Nombre: "Ana", Cedula: "123", Email: "sin-arroba"},
		{Nombre: "Ana", Cedula: "123", Email: "@empieza.mal"},
	}
	for _, candidato := range casos {
		_, err := CrearSolicitud(ctx, ses, internaldto.SolicitudCreateReq{Candidato: candidato})
		quiereStatus(t, err, http.StatusBadRequest)
	}
	if llamadas != 0 {
		t.Fatalf("la validación local no debe tocar el core (%d llamadas)", llamadas)
	}
}

func TestCrearSolicitudReenviaElCandidato(t *testing.T) {
	var gotPath string
	var gotBody internaldto.SolicitudCreateReq
	conFake(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		escribirJSON(w, `{"id": 31, "empresa": 3, "candidato": {"cedula": "123"}, "estado": "PENDIENTE", "created_at": "2026-08-31T10:00:00Z"}`)
	})
	ctx := nuevoCtx("tok-sol-b")
	ses := sesionCliente("tok-sol-b")

	row, err := CrearSolicitud(ctx, ses, internaldto.SolicitudCreateReq{
		Candidato: internaldto.CandidatoNuevo{Nombre: "Ana", Apellido: "Rojas", Cedula: "123", Email: "ana@acme.co"},
	})
	if err != nil {
		t.Fatalf("CrearSolicitud: %v", err)
	}
	if gotPath != "/api/solicitudes/" {
		t.Fatalf("path = %q", gotPath)
	}
	if gotBody.Candidato.Cedula != "123" || gotBody.Candidato.Email != "ana@acme.co" {
		t.Fatalf("candidato enviado = %+v", gotBody.Candidato)
	}
	if row.ID != 31 {
		t.Fatalf("row = %+v", row)
	}
}

func TestClienteSinEmpresaRecibeGuiaSinTocarElCore(t *testing.T) {
	var llamadas int
	conFake(t, func(w http.ResponseWriter, r *http.Request) {
		llamadas++
		w.WriteHeader(http.StatusNotFound)
	})
	ctx := nuevoCtx("tok-sol-c")
	ses := sesionDePrueba("tok-sol-c", models.RolCliente) // sin empresa

	_, err := CrearSolicitud(ctx, ses, internaldto.SolicitudCreateReq{
		Candidato: internaldto.CandidatoNuevo{Nombre: "Ana", Cedula: "123", Email: "ana@acme.co"},
	})
	quiereStatus(t, err, http.StatusForbidden)
	if !strings.Contains(err.Error(), "empresa asociada") {
		t.Fatalf("el mensaje debe orientar al usuario: %v", err)
	}

	_, err = InvitarCandidato(ctx, ses, 31)
	quiereStatus(t, err, http.StatusForbidden)

	if llamadas != 0 {
		t.Fatalf("sin empresa nada viaja al core (%d llamadas)", llamadas)
	}

	// Un analista sin empresa no queda bloqueado por esta regla.
	_, err = CrearSolicitud(ctx, sesionDePrueba("tok-sol-c", models.RolAnalista), internaldto.SolicitudCreateReq{})
	quiereStatus(t, err, http.StatusBadRequest)
}
