package services

import (
	stdctx "context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/beego/beego/v2/core/logs"
	"github.com/beego/beego/v2/server/web/context"

	"github.com/LeitoBarrera/estudios_mid/helpers"
	"github.com/LeitoBarrera/estudios_mid/internal/clients"
	internaldto "github.com/LeitoBarrera/estudios_mid/internal/dto"
	internalhelpers "github.com/LeitoBarrera/estudios_mid/internal/helpers"
	"github.com/LeitoBarrera/estudios_mid/internal/metrics"
	"github.com/LeitoBarrera/estudios_mid/models"
	rootservices "github.com/LeitoBarrera/estudios_mid/services"
)

// Sondeo de notificaciones por sesión: una goroutine con ticker refresca la
// lista cada pocos segundos mientras alguien la consulte. Sin accesos durante
// el periodo de gracia la goroutine se apaga sola. Un ciclo fallido conserva
// la última lista buena; el siguiente ciclo vuelve a intentar.

type sesionPoller struct {
	// headers nunca se muta después de crearse; cada petición entrega un mapa
	// nuevo y aquí solo se reemplaza la referencia, siempre bajo mu.
	mu           sync.Mutex
	headers      map[string]string
	items        []models.Notificacion
	actualizado  time.Time
	ultimoAcceso time.Time
	cargado      bool

	stop chan struct{}
}

var (
	pollersMu sync.Mutex
	pollers   = map[string]*sesionPoller{}
)

// ObtenerNotificaciones devuelve la vista del panel. Arranca el sondeo de la
// sesión si no existe; con forzar=true refresca contra el core antes de responder.
func ObtenerNotificaciones(ctx *context.Context, ses *internalhelpers.Sesion, forzar bool) (*internaldto.NotificacionesDTO, error) {
	p := pollerDe(ses, internalhelpers.CopyRequestHeaders(ctx))

	p.mu.Lock()
	p.ultimoAcceso = time.Now()
	cargado := p.cargado
	p.mu.Unlock()

	if forzar || !cargado {
		if err := p.refrescar(requestContext(ctx)); err != nil {
			return nil, helpers.AsAppError(err, "error consultando notificaciones")
		}
	}
	return p.snapshot(), nil
}

// AbrirNotificacion resuelve el enlace profundo de una notificación y la marca
// leída de forma oportunista: si el marcado falla, la navegación no se bloquea.
func AbrirNotificacion(ctx *context.Context, ses *internalhelpers.Sesion, id int64) (*internaldto.AbrirNotificacionResp, error) {
	p := pollerDe(ses, internalhelpers.CopyRequestHeaders(ctx))
	if err := p.refrescar(requestContext(ctx)); err != nil {
		return nil, helpers.AsAppError(err, "error consultando notificaciones")
	}

	var objetivo *models.Notificacion
	p.mu.Lock()
	for i := range p.items {
		if p.items[i].ID == id {
			n := p.items[i]
			objetivo = &n
			break
		}
	}
	p.mu.Unlock()
	if objetivo == nil {
		return nil, helpers.NewAppError(http.StatusNotFound, "notificación no encontrada", nil)
	}

	if !objetivo.Leida {
		if err := clients.Core().MarcarLeida(requestContext(ctx), p.headersActuales(), id); err != nil {
			logs.Warn("no se pudo marcar leída la notificación %d: %v", id, err)
		} else {
			objetivo.Leida = true
		}
	}

	return &internaldto.AbrirNotificacionResp{
		Notificacion: *objetivo,
		SolicitudID:  objetivo.SolicitudID,
		Ruta:         rutaDestino(ses.Perfil.Rol, objetivo.SolicitudID),
	}, nil
}

// MarcarTodasLeidas marca todas las pendientes y devuelve el panel recargado.
func MarcarTodasLeidas(ctx *context.Context, ses *internalhelpers.Sesion) (*internaldto.NotificacionesDTO, error) {
	p := pollerDe(ses, internalhelpers.CopyRequestHeaders(ctx))
	if err := clients.Core().MarcarTodasLeidas(requestContext(ctx), p.headersActuales()); err != nil {
		return nil, helpers.AsAppError(err, "error marcando notificaciones")
	}
	if err := p.refrescar(requestContext(ctx)); err != nil {
		return nil, helpers.AsAppError(err, "error recargando notificaciones")
	}
	return p.snapshot(), nil
}

// DetenerSondeos apaga todos los sondeos activos (cierre de la aplicación).
func DetenerSondeos() {
	pollersMu.Lock()
	defer pollersMu.Unlock()
	for key, p := range pollers {
		close(p.stop)
		delete(pollers, key)
		metrics.PollerSesionTermina()
	}
}

func pollerDe(ses *internalhelpers.Sesion, headers map[string]string) *sesionPoller {
	key := ses.TokenHash()

	pollersMu.Lock()
	defer pollersMu.Unlock()
	if p, ok := pollers[key]; ok {
		p.mu.Lock()
		p.headers = headers
		p.mu.Unlock()
		return p
	}

	p := &sesionPoller{
		headers:      headers,
		ultimoAcceso: time.Now(),
		stop:         make(chan struct{}),
	}
	pollers[key] = p
	metrics.PollerSesionInicia()
	go p.loop(key)
	return p
}

func (p *sesionPoller) loop(key string) {
	cfg := rootservices.GetConfig()
	ticker := time.NewTicker(cfg.NotificacionesPoll)
	defer ticker.Stop()

	for {
		select {
		case <-p.stop:
			return
		case <-ticker.C:
			metrics.PollerCiclo()

			p.mu.Lock()
			inactivo := time.Since(p.ultimoAcceso) > cfg.NotificacionesIdleMax
			p.mu.Unlock()
			if inactivo {
				pollersMu.Lock()
				if actual, ok := pollers[key]; ok && actual == p {
					delete(pollers, key)
				}
				pollersMu.Unlock()
				metrics.PollerSesionTermina()
				return
			}

			if err := p.refrescar(stdctx.Background()); err != nil {
				logs.Warn("sondeo de notificaciones falló para %s: %v", key, err)
			}
		}
	}
}

func (p *sesionPoller) headersActuales() map[string]string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.headers
}

func (p *sesionPoller) refrescar(ctx stdctx.Context) error {
	items, err := clients.Core().ListNotificaciones(ctx, p.headersActuales(), false)
	if err != nil {
		return err
	}
	p.mu.Lock()
	p.items = items
	p.actualizado = time.Now()
	p.cargado = true
	p.mu.Unlock()
	return nil
}

func (p *sesionPoller) snapshot() *internaldto.NotificacionesDTO {
	p.mu.Lock()
	defer p.mu.Unlock()

	items := make([]models.Notificacion, len(p.items))
	copy(items, p.items)
	noLeidas := 0
	for _, n := range items {
		if !n.Leida {
			noLeidas++
		}
	}
	return &internaldto.NotificacionesDTO{
		Notificaciones: items,
		NoLeidas:       noLeidas,
		ActualizadoEn:  p.actualizado.UTC().Format(time.RFC3339),
	}
}

// rutaDestino arma la ruta del tablero según el rol, con el enlace profundo a
// la solicitud cuando la notificación lo trae.
func rutaDestino(rol string, solicitudID *int64) string {
	base := "/"
	switch strings.ToUpper(strings.TrimSpace(rol)) {
	case models.RolAnalista, models.RolAdmin:
		base = "/analista"
	case models.RolCliente:
		base = "/cliente"
	case models.RolCandidato:
		base = "/candidato"
	}
	if solicitudID != nil && base != "/" && base != "/candidato" {
		return fmt.Sprintf("%s?open=%d", base, *solicitudID)
	}
	return base
}
