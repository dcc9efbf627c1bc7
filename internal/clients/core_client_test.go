package clients

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/LeitoBarrera/estudios_mid/internal/dto"
)

// Un solo servidor falso por binario de pruebas: la config se resuelve una vez
// y todas las llamadas van al mismo puerto; cada prueba intercambia el handler.

var (
	fakeMu      sync.Mutex
	fakeHandler http.HandlerFunc
)

func TestMain(m *testing.M) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fakeMu.Lock()
		h := fakeHandler
		fakeMu.Unlock()
		if h == nil {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		h(w, r)
	}))
	os.Setenv("CORE_API_BASE_URL", srv.URL)
	os.Setenv("GEO_API_BASE_URL", srv.URL)
	code := m.Run()
	srv.Close()
	os.Exit(code)
}

func conFake(t *testing.T, h http.HandlerFunc) {
	t.Helper()
	fakeMu.Lock()
	fakeHandler = h
	fakeMu.Unlock()
	t.Cleanup(func() {
		fakeMu.Lock()
		fakeHandler = nil
		fakeMu.Unlock()
	})
}

func TestValidarMasivoEnviaItemsExactos(t *testing.T) {
	var gotPath string
	var gotBody dto.ValidacionMasivaReq
	conFake(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(`{"ok": true, "updated": 2}`))
	})

	req := dto.ValidacionMasivaReq{Items: []dto.ItemMasivo{
		{ID: 1, Puntaje: 4.5},
		{ID: 3, Puntaje: 3.0, Comentario: "ok"},
	}}
	resp, err := Core().ValidarMasivo(context.Background(), nil, 42, req)
	if err != nil {
		t.Fatalf("ValidarMasivo: %v", err)
	}
	if gotPath != "/api/estudios/42/validar_masivo/" {
		t.Fatalf("path = %q", gotPath)
	}
	if len(gotBody.Items) != 2 || gotBody.Items[0].ID != 1 || gotBody.Items[0].Puntaje != 4.5 {
		t.Fatalf("items enviados = %+v", gotBody.Items)
	}
	if !resp.Ok || resp.Updated != 2 {
		t.Fatalf("resp = %+v", resp)
	}
}

func TestValidarItemRutaYCuerpo(t *testing.T) {
	var gotPath string
	var gotBody map[string]interface{}
	conFake(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(`{"ok": true}`))
	})

	err := Core().ValidarItem(context.Background(), nil, 1, dto.ValidarItemReq{Puntaje: 4.5})
	if err != nil {
		t.Fatalf("ValidarItem: %v", err)
	}
	if gotPath != "/api/items/1/validar/" {
		t.Fatalf("path = %q", gotPath)
	}
	if gotBody["puntaje"] != 4.5 {
		t.Fatalf("puntaje = %v", gotBody["puntaje"])
	}
}

func TestDeleteRegistroEmiteUnSoloDelete(t *testing.T) {
	var deletes int
	var gotPath string
	conFake(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			deletes++
			gotPath = r.URL.Path
		}
		w.WriteHeader(http.StatusNoContent)
	})

	if err := Core().DeleteRegistro(context.Background(), nil, RecursoAcademicos, 5); err != nil {
		t.Fatalf("DeleteRegistro: %v", err)
	}
	if deletes != 1 {
		t.Fatalf("deletes = %d, quiere exactamente 1", deletes)
	}
	if gotPath != "/api/academicos/5/" {
		t.Fatalf("path = %q", gotPath)
	}
}

func TestCreateRegistroSinArchivoViajaJSONConNull(t *testing.T) {
	var gotContentType string
	var gotRaw map[string]json.RawMessage
	conFake(t, func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&gotRaw)
		_, _ = w.Write([]byte(`{"id": 11}`))
	})

	payload := map[string]interface{}{
		"estudio":          int64(42),
		"titulo":           "Ingeniería",
		"fecha_graduacion": nil,
	}
	row, err := Core().CreateRegistro(context.Background(), nil, RecursoAcademicos, payload, dto.FormFields(payload), "", nil)
	if err != nil {
		t.Fatalf("CreateRegistro: %v", err)
	}
	if gotContentType != "application/json" {
		t.Fatalf("content-type = %q", gotContentType)
	}
	if raw, ok := gotRaw["fecha_graduacion"]; !ok || string(raw) != "null" {
		t.Fatalf("fecha_graduacion = %q (presente=%v), quiere null", raw, ok)
	}
	if id, _ := row["id"].(float64); id != 11 {
		t.Fatalf("row = %v", row)
	}
}

func TestCreateRegistroConArchivoEsMultipart(t *testing.T) {
	var gotContentType, gotCampo, gotTitulo string
	conFake(t, func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		if err := r.ParseMultipartForm(1 << 20); err == nil {
			gotTitulo = r.FormValue("titulo")
			if _, header, err := r.FormFile("certificado"); err == nil {
				gotCampo = header.Filename
			}
		}
		_, _ = w.Write([]byte(`{"id": 12}`))
	})

	payload := map[string]interface{}{"titulo": "Cert"}
	_, err := Core().CreateRegistro(context.Background(), nil, RecursoLaborales, payload, dto.FormFields(payload), "cert.pdf", strings.NewReader("pdf"))
	if err != nil {
		t.Fatalf("CreateRegistro: %v", err)
	}
	if !strings.HasPrefix(gotContentType, "multipart/form-data") {
		t.Fatalf("content-type = %q", gotContentType)
	}
	if gotCampo != "cert.pdf" || gotTitulo != "Cert" {
		t.Fatalf("archivo=%q titulo=%q", gotCampo, gotTitulo)
	}
}

func TestListNotificacionesSoloNoLeidas(t *testing.T) {
	var gotQuery string
	conFake(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`[{"id": 1, "titulo": "t", "is_read": false}]`))
	})

	items, err := Core().ListNotificaciones(context.Background(), nil, true)
	if err != nil {
		t.Fatalf("ListNotificaciones: %v", err)
	}
	if gotQuery != "unread=true" {
		t.Fatalf("query = %q", gotQuery)
	}
	if len(items) != 1 || items[0].Leida {
		t.Fatalf("items = %+v", items)
	}
}

func TestMarcarLeidaRutaExacta(t *testing.T) {
	var gotMethod, gotPath string
	conFake(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"ok": true}`))
	})

	if err := Core().MarcarLeida(context.Background(), nil, 9); err != nil {
		t.Fatalf("MarcarLeida: %v", err)
	}
	if gotMethod != http.MethodPost || gotPath != "/api/notificaciones/9/marcar_leida/" {
		t.Fatalf("%s %s", gotMethod, gotPath)
	}
}

func TestGeoNormalizaIDs(t *testing.T) {
	conFake(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/geo/departamentos/" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`[{"id": 5, "nombre": "Antioquia"}, {"id": 11, "nombre": "Bogotá D.C."}]`))
	})

	lugares, err := Geo().Departamentos(context.Background())
	if err != nil {
		t.Fatalf("Departamentos: %v", err)
	}
	if len(lugares) != 2 || lugares[0].ID != "5" || lugares[0].Nombre != "Antioquia" {
		t.Fatalf("lugares = %+v", lugares)
	}
}
