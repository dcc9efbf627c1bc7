package helpers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"

	beectx "github.com/beego/beego/v2/server/web/context"
	"github.com/golang-jwt/jwt/v5"

	"github.com/LeitoBarrera/estudios_mid/models"
)

var meCalls atomic.Int64

func TestMain(m *testing.M) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/me/" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		meCalls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 9, "username": "ana", "email": "ana@acme.co", "rol": "CLIENTE", "empresa_id": 3}`))
	}))
	os.Setenv("CORE_API_BASE_URL", srv.URL)
	code := m.Run()
	srv.Close()
	os.Exit(code)
}

func ctxConAuth(authorization string) *beectx.Context {
	ctx := beectx.NewContext()
	req := httptest.NewRequest(http.MethodGet, "http://mid.local/v1/prueba", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	ctx.Reset(httptest.NewRecorder(), req)
	return ctx
}

func tokenConClaims(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	firmado, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secreto-de-prueba"))
	if err != nil {
		t.Fatalf("firmando token: %v", err)
	}
	return firmado
}

func TestSesionDesdeClaimsNoTocaElCore(t *testing.T) {
	antes := meCalls.Load()
	token := tokenConClaims(t, jwt.MapClaims{
		"user_id":    float64(7),
		"username":   "camilo",
		"email":      "camilo@acme.co",
		"rol":        "analista",
		"empresa_id": float64(2),
	})
	ctx := ctxConAuth("Bearer " + token)

	ses, err := SesionDe(ctx)
	if err != nil {
		t.Fatalf("SesionDe: %v", err)
	}
	if ses.Perfil.Rol != models.RolAnalista {
		t.Fatalf("rol = %q", ses.Perfil.Rol)
	}
	if ses.Perfil.ID != 7 || ses.Perfil.Username != "camilo" {
		t.Fatalf("perfil = %+v", ses.Perfil)
	}
	if ses.Perfil.EmpresaID == nil || *ses.Perfil.EmpresaID != 2 {
		t.Fatalf("empresa = %v", ses.Perfil.EmpresaID)
	}
	if meCalls.Load() != antes {
		t.Fatalf("con rol en los claims no hay viaje al core")
	}
}

func TestSesionSinAuthorizationFalla(t *testing.T) {
	_, err := SesionDe(ctxConAuth(""))
	if !errors.Is(err, ErrSinAutorizacion) {
		t.Fatalf("err = %v", err)
	}
}

func TestSesionTokenOpacoResuelvePorElCoreYCachea(t *testing.T) {
	antes := meCalls.Load()
	// Un token opaco (no JWT) obliga a preguntar al core quién es.
	ses, err := SesionDe(ctxConAuth("Bearer token-opaco-de-prueba"))
	if err != nil {
		t.Fatalf("SesionDe: %v", err)
	}
	if ses.Perfil.Rol != models.RolCliente || ses.Perfil.Username != "ana" {
		t.Fatalf("perfil = %+v", ses.Perfil)
	}
	if meCalls.Load() != antes+1 {
		t.Fatalf("llamadas a me = %d", meCalls.Load()-antes)
	}

	// Mismo token, contexto nuevo: sale de la caché corta.
	if _, err := SesionDe(ctxConAuth("Bearer token-opaco-de-prueba")); err != nil {
		t.Fatalf("SesionDe cacheado: %v", err)
	}
	if meCalls.Load() != antes+1 {
		t.Fatalf("la segunda resolución no debe volver al core")
	}
}

func TestRequireRolInsuficiente(t *testing.T) {
	token := tokenConClaims(t, jwt.MapClaims{"rol": "CANDIDATO"})
	ctx := ctxConAuth("Bearer " + token)

	if _, err := RequireRol(ctx, models.RolAnalista, models.RolAdmin); !errors.Is(err, ErrRolInsuficiente) {
		t.Fatalf("err = %v", err)
	}
	if _, err := RequireRol(ctx, models.RolCandidato); err != nil {
		t.Fatalf("con el rol correcto no debe fallar: %v", err)
	}
}

func TestTokenHashEstableYCorto(t *testing.T) {
	a := Sesion{Token: "abc"}
	b := Sesion{Token: "abc"}
	c := Sesion{Token: "xyz"}
	if a.TokenHash() != b.TokenHash() {
		t.Fatalf("el hash debe ser determinista")
	}
	if a.TokenHash() == c.TokenHash() {
		t.Fatalf("tokens distintos no deben colisionar")
	}
	if len(a.TokenHash()) != 16 {
		t.Fatalf("hash = %q", a.TokenHash())
	}
}
