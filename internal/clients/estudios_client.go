package clients

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/LeitoBarrera/estudios_mid/helpers"
	"github.com/LeitoBarrera/estudios_mid/internal/dto"
	"github.com/LeitoBarrera/estudios_mid/internal/metrics"
	"github.com/LeitoBarrera/estudios_mid/models"
)

// ListEstudios trae los estudios visibles para el usuario; el core ya filtra
// por rol (cliente ve su empresa, analista sus asignados, candidato el propio).
func (c *CoreClient) ListEstudios(ctx context.Context, headers map[string]string, query url.Values) ([]models.Estudio, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	endpoint := c.api("estudios")
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	start := time.Now()
	var estudios []models.Estudio
	err := helpers.DoJSON("GET", endpoint, headers, nil, &estudios, c.cfg.RequestTimeout)
	metrics.ObserveOutbound("core", "estudios_list", start, err)
	if err != nil {
		return nil, err
	}
	return estudios, nil
}

// GetEstudio trae un estudio con su checklist completo.
func (c *CoreClient) GetEstudio(ctx context.Context, headers map[string]string, id int64) (*models.Estudio, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	start := time.Now()
	var estudio models.Estudio
	err := helpers.DoJSON("GET", c.api("estudios", strconv.FormatInt(id, 10)), headers, nil, &estudio, c.cfg.RequestTimeout)
	metrics.ObserveOutbound("core", "estudios_get", start, err)
	if err != nil {
		return nil, err
	}
	return &estudio, nil
}

// GetResumen trae la vista agregada del estudio.
func (c *CoreClient) GetResumen(ctx context.Context, headers map[string]string, id int64) (*models.ResumenEstudio, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	start := time.Now()
	var resumen models.ResumenEstudio
	err := helpers.DoJSON("GET", c.api("estudios", strconv.FormatInt(id, 10), "resumen"), headers, nil, &resumen, c.cfg.RequestTimeout)
	metrics.ObserveOutbound("core", "estudios_resumen", start, err)
	if err != nil {
		return nil, err
	}
	return &resumen, nil
}

// GetResumenPDF descarga el PDF del resumen sin interpretarlo.
func (c *CoreClient) GetResumenPDF(ctx context.Context, headers map[string]string, id int64) ([]byte, string, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, "", err
	}
	start := time.Now()
	body, contentType, err := helpers.DoBinary(c.api("estudios", strconv.FormatInt(id, 10), "resumen_pdf"), headers, c.cfg.RequestTimeout)
	metrics.ObserveOutbound("core", "estudios_resumen_pdf", start, err)
	return body, contentType, err
}

// FirmarAutorizacion marca la autorización global del estudio como firmada.
func (c *CoreClient) FirmarAutorizacion(ctx context.Context, headers map[string]string, id int64) error {
	if err := ctxErr(ctx); err != nil {
		return err
	}
	start := time.Now()
	err := helpers.DoJSON("POST", c.api("estudios", strconv.FormatInt(id, 10), "firmar_autorizacion"), headers, map[string]interface{}{}, nil, c.cfg.RequestTimeout)
	metrics.ObserveOutbound("core", "estudios_firmar", start, err)
	return err
}

// ValidarMasivo valida o marca en bloque los ítems indicados.
func (c *CoreClient) ValidarMasivo(ctx context.Context, headers map[string]string, id int64, req dto.ValidacionMasivaReq) (*dto.OkDTO, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	start := time.Now()
	var resp dto.OkDTO
	err := helpers.DoJSON("POST", c.api("estudios", strconv.FormatInt(id, 10), "validar_masivo"), headers, req, &resp, c.cfg.RequestTimeout)
	metrics.ObserveOutbound("core", "estudios_validar_masivo", start, err)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// AgregarItem crea un ítem nuevo en el checklist del estudio.
func (c *CoreClient) AgregarItem(ctx context.Context, headers map[string]string, id int64, tipo string) (*models.EstudioItem, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	start := time.Now()
	var item models.EstudioItem
	err := helpers.DoJSON("POST", c.api("estudios", strconv.FormatInt(id, 10), "agregar_item"), headers, dto.AgregarItemReq{Tipo: tipo}, &item, c.cfg.RequestTimeout)
	metrics.ObserveOutbound("core", "estudios_agregar_item", start, err)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// ValidarItem marca un ítem individual como validado con su puntaje.
func (c *CoreClient) ValidarItem(ctx context.Context, headers map[string]string, itemID int64, req dto.ValidarItemReq) error {
	if err := ctxErr(ctx); err != nil {
		return err
	}
	start := time.Now()
	err := helpers.DoJSON("POST", c.api("items", strconv.FormatInt(itemID, 10), "validar"), headers, req, nil, c.cfg.RequestTimeout)
	metrics.ObserveOutbound("core", "items_validar", start, err)
	return err
}

// MarcarHallazgo marca un ítem con hallazgo y su comentario.
func (c *CoreClient) MarcarHallazgo(ctx context.Context, headers map[string]string, itemID int64, req dto.HallazgoReq) error {
	if err := ctxErr(ctx); err != nil {
		return err
	}
	start := time.Now()
	err := helpers.DoJSON("POST", c.api("items", strconv.FormatInt(itemID, 10), "marcar_hallazgo"), headers, req, nil, c.cfg.RequestTimeout)
	metrics.ObserveOutbound("core", "items_hallazgo", start, err)
	return err
}
