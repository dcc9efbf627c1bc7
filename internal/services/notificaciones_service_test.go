package services

import (
	"net/http"
	"sync"
	"testing"

	"github.com/LeitoBarrera/estudios_mid/models"
)

// coreNotificaciones simula el lado del core del sondeo: una lista mutable y
// endpoints de marcado que pueden fallar a voluntad.
type coreNotificaciones struct {
	mu         sync.Mutex
	lista      string
	patchFalla bool
	patches    int
	marcarTodo int
}

func (c *coreNotificaciones) handler(w http.ResponseWriter, r *http.Request) {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/api/notificaciones/":
		escribirJSON(w, c.lista)
	case r.Method == http.MethodPost && r.URL.Path == "/api/notificaciones/5/marcar_leida/":
		c.patches++
		if c.patchFalla {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		escribirJSON(w, `{"ok": true}`)
	case r.Method == http.MethodPost && r.URL.Path == "/api/notificaciones/marcar_todas_leidas/":
		c.marcarTodo++
		escribirJSON(w, `{"ok": true}`)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (c *coreNotificaciones) setLista(lista string) {
	c.mu.Lock()
	c.lista = lista
	c.mu.Unlock()
}

const listaConPendientes = `[
	{"id": 5, "tipo": "ESTUDIO", "titulo": "Estudio actualizado", "cuerpo": "", "is_read": false, "created_at": "2026-08-30T10:00:00Z", "solicitud": 900},
	{"id": 4, "tipo": "SISTEMA", "titulo": "Bienvenido", "cuerpo": "", "is_read": true, "created_at": "2026-08-29T10:00:00Z", "solicitud": null}
]`

func TestObtenerNotificacionesCargaYCuentaPendientes(t *testing.T) {
	core := &coreNotificaciones{lista: listaConPendientes}
	conFake(t, core.handler)
	t.Cleanup(DetenerSondeos)
	ctx := nuevoCtx("tok-notif-a")
	ses := sesionDePrueba("tok-notif-a", models.RolAnalista)

	panel, err := ObtenerNotificaciones(ctx, ses, false)
	if err != nil {
		t.Fatalf("ObtenerNotificaciones: %v", err)
	}
	if len(panel.Notificaciones) != 2 || panel.NoLeidas != 1 {
		t.Fatalf("panel = %+v", panel)
	}

	// Sin forzar, la segunda lectura sirve el snapshot local.
	core.setLista(`[]`)
	panel, err = ObtenerNotificaciones(ctx, ses, false)
	if err != nil {
		t.Fatalf("ObtenerNotificaciones: %v", err)
	}
	if len(panel.Notificaciones) != 2 {
		t.Fatalf("el snapshot no debió refrescarse: %+v", panel)
	}

	// Con forzar sí va al core.
	panel, err = ObtenerNotificaciones(ctx, ses, true)
	if err != nil {
		t.Fatalf("ObtenerNotificaciones forzado: %v", err)
	}
	if len(panel.Notificaciones) != 0 {
		t.Fatalf("panel = %+v", panel)
	}
}

func TestAbrirNotificacionMarcaLeidaYResuelveRuta(t *testing.T) {
	core := &coreNotificaciones{lista: listaConPendientes}
	conFake(t, core.handler)
	t.Cleanup(DetenerSondeos)
	ctx := nuevoCtx("tok-notif-b")
	ses := sesionDePrueba("tok-notif-b", models.RolAnalista)

	resp, err := AbrirNotificacion(ctx, ses, 5)
	if err != nil {
		t.Fatalf("AbrirNotificacion: %v", err)
	}
	if core.patches != 1 {
		t.Fatalf("patches = %d", core.patches)
	}
	if !resp.Notificacion.Leida {
		t.Fatalf("la notificación debió quedar leída: %+v", resp.Notificacion)
	}
	if resp.Ruta != "/analista?open=900" {
		t.Fatalf("ruta = %q", resp.Ruta)
	}
}

func TestAbrirNotificacionNoSeBloqueaSiElMarcadoFalla(t *testing.T) {
	core := &coreNotificaciones{lista: listaConPendientes, patchFalla: true}
	conFake(t, core.handler)
	t.Cleanup(DetenerSondeos)
	ctx := nuevoCtx("tok-notif-c")
	ses := sesionDePrueba("tok-notif-c", models.RolAnalista)

	resp, err := AbrirNotificacion(ctx, ses, 5)
	if err != nil {
		t.Fatalf("el fallo del marcado no debe bloquear la navegación: %v", err)
	}
	if resp.Ruta != "/analista?open=900" {
		t.Fatalf("ruta = %q", resp.Ruta)
	}
	if resp.Notificacion.Leida {
		t.Fatalf("sin confirmación del core la notificación sigue pendiente")
	}
}

func TestAbrirNotificacionInexistenteEs404(t *testing.T) {
	core := &coreNotificaciones{lista: listaConPendientes}
	conFake(t, core.handler)
	t.Cleanup(DetenerSondeos)
	ctx := nuevoCtx("tok-notif-d")
	ses := sesionDePrueba("tok-notif-d", models.RolAnalista)

	_, err := AbrirNotificacion(ctx, ses, 999)
	quiereStatus(t, err, http.StatusNotFound)
}

func TestMarcarTodasLeidasRecargaElPanel(t *testing.T) {
	core := &coreNotificaciones{lista: listaConPendientes}
	conFake(t, core.handler)
	t.Cleanup(DetenerSondeos)
	ctx := nuevoCtx("tok-notif-e")
	ses := sesionDePrueba("tok-notif-e", models.RolAnalista)

	// Tras marcar, el core devuelve todo leído y el panel se recarga.
	core.setLista(`[
		{"id": 5, "tipo": "ESTUDIO", "titulo": "Estudio actualizado", "cuerpo": "", "is_read": true, "created_at": "2026-08-30T10:00:00Z", "solicitud": 900}
	]`)
	panel, err := MarcarTodasLeidas(ctx, ses)
	if err != nil {
		t.Fatalf("MarcarTodasLeidas: %v", err)
	}
	if core.marcarTodo != 1 {
		t.Fatalf("marcar_todas_leidas = %d llamadas", core.marcarTodo)
	}
	if panel.NoLeidas != 0 || len(panel.Notificaciones) != 1 {
		t.Fatalf("panel = %+v", panel)
	}
}

func TestObtenerNotificacionesConcurrenteCompartenSondeo(t *testing.T) {
	core := &coreNotificaciones{lista: listaConPendientes}
	conFake(t, core.handler)
	t.Cleanup(DetenerSondeos)
	ses := sesionDePrueba("tok-notif-f", models.RolAnalista)

	// La misma sesión consulta a la vez desde varias pestañas; cada petición
	// trae headers frescos y todas comparten el mismo sondeo.
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ctx := nuevoCtx("tok-notif-f")
			if _, err := ObtenerNotificaciones(ctx, ses, true); err != nil {
				t.Errorf("ObtenerNotificaciones: %v", err)
			}
		}()
	}
	wg.Wait()

	panel, err := ObtenerNotificaciones(nuevoCtx("tok-notif-f"), ses, false)
	if err != nil {
		t.Fatalf("ObtenerNotificaciones: %v", err)
	}
	if len(panel.Notificaciones) != 2 || panel.NoLeidas != 1 {
		t.Fatalf("panel = %+v", panel)
	}
}

func TestRutaDestinoPorRol(t *testing.T) {
	sol := int64(900)
	cases := []struct {
		rol  string
		sol  *int64
		want string
	}{
		{models.RolAnalista, &sol, "/analista?open=900"},
		{models.RolAdmin, &sol, "/analista?open=900"},
		{models.RolCliente, &sol, "/cliente?open=900"},
		{models.RolCandidato, &sol, "/candidato"},
		{models.RolAnalista, nil, "/analista"},
		{"", nil, "/"},
	}
	for _, tc := range cases {
		if got := rutaDestino(tc.rol, tc.sol); got != tc.want {
			t.Errorf("rutaDestino(%q, %v) = %q, quiere %q", tc.rol, tc.sol, got, tc.want)
		}
	}
}
