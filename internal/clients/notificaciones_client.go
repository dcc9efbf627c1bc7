package clients

import (
	"context"
	"strconv"
	"time"

	"github.com/LeitoBarrera/estudios_mid/helpers"
	"github.com/LeitoBarrera/estudios_mid/internal/metrics"
	"github.com/LeitoBarrera/estudios_mid/models"
)

// ListNotificaciones trae las notificaciones del usuario, recientes primero.
func (c *CoreClient) ListNotificaciones(ctx context.Context, headers map[string]string, soloNoLeidas bool) ([]models.Notificacion, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	endpoint := c.api("notificaciones")
	if soloNoLeidas {
		endpoint += "?unread=true"
	}
	start := time.Now()
	var items []models.Notificacion
	err := helpers.DoJSON("GET", endpoint, headers, nil, &items, c.cfg.RequestTimeout)
	metrics.ObserveOutbound("core", "notificaciones_list", start, err)
	if err != nil {
		return nil, err
	}
	return items, nil
}

// MarcarLeida marca una notificación individual como leída.
func (c *CoreClient) MarcarLeida(ctx context.Context, headers map[string]string, id int64) error {
	if err := ctxErr(ctx); err != nil {
		return err
	}
	start := time.Now()
	err := helpers.DoJSON("POST", c.api("notificaciones", strconv.FormatInt(id, 10), "marcar_leida"), headers, map[string]interface{}{}, nil, c.cfg.RequestTimeout)
	metrics.ObserveOutbound("core", "notificaciones_leer", start, err)
	return err
}

// MarcarTodasLeidas marca todas las pendientes en una sola llamada.
func (c *CoreClient) MarcarTodasLeidas(ctx context.Context, headers map[string]string) error {
	if err := ctxErr(ctx); err != nil {
		return err
	}
	start := time.Now()
	err := helpers.DoJSON("POST", c.api("notificaciones", "marcar_todas_leidas"), headers, map[string]interface{}{}, nil, c.cfg.RequestTimeout)
	metrics.ObserveOutbound("core", "notificaciones_marcar_todas", start, err)
	return err
}
