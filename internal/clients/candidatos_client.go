package clients

import (
	"context"
	"time"

	"github.com/LeitoBarrera/estudios_mid/helpers"
	"github.com/LeitoBarrera/estudios_mid/internal/metrics"
)

// GetCandidatoMe trae la hoja de vida del candidato autenticado.
func (c *CoreClient) GetCandidatoMe(ctx context.Context, headers map[string]string) (map[string]interface{}, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	start := time.Now()
	var bio map[string]interface{}
	err := helpers.DoJSON("GET", c.api("candidatos", "me"), headers, nil, &bio, c.cfg.RequestTimeout)
	metrics.ObserveOutbound("core", "candidatos_me", start, err)
	if err != nil {
		return nil, err
	}
	return bio, nil
}

// PatchCandidatoMe aplica un parche parcial sobre la hoja de vida y devuelve el
// registro actualizado tal como quedó en el core.
func (c *CoreClient) PatchCandidatoMe(ctx context.Context, headers map[string]string, payload map[string]interface{}) (map[string]interface{}, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	start := time.Now()
	var bio map[string]interface{}
	err := helpers.DoJSON("PATCH", c.api("candidatos", "me"), headers, payload, &bio, c.cfg.RequestTimeout)
	metrics.ObserveOutbound("core", "candidatos_me_patch", start, err)
	if err != nil {
		return nil, err
	}
	return bio, nil
}
