package clients

import (
	"context"
	"strconv"
	"time"

	"github.com/LeitoBarrera/estudios_mid/helpers"
	"github.com/LeitoBarrera/estudios_mid/internal/dto"
	"github.com/LeitoBarrera/estudios_mid/internal/metrics"
)

// ListSolicitudes trae las solicitudes visibles; el core filtra por empresa/rol.
func (c *CoreClient) ListSolicitudes(ctx context.Context, headers map[string]string) ([]dto.SolicitudDTO, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	start := time.Now()
	var rows []dto.SolicitudDTO
	err := helpers.DoJSON("GET", c.api("solicitudes"), headers, nil, &rows, c.cfg.RequestTimeout)
	metrics.ObserveOutbound("core", "solicitudes_list", start, err)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// CreateSolicitud crea una solicitud con su candidato embebido; el core crea el
// estudio asociado en la misma transacción.
func (c *CoreClient) CreateSolicitud(ctx context.Context, headers map[string]string, req dto.SolicitudCreateReq) (*dto.SolicitudDTO, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	start := time.Now()
	var row dto.SolicitudDTO
	err := helpers.DoJSON("POST", c.api("solicitudes"), headers, req, &row, c.cfg.RequestTimeout)
	metrics.ObserveOutbound("core", "solicitudes_create", start, err)
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// InvitarCandidato dispara el correo de invitación al portal del candidato.
func (c *CoreClient) InvitarCandidato(ctx context.Context, headers map[string]string, id int64) (*dto.InvitacionResp, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	start := time.Now()
	var resp dto.InvitacionResp
	err := helpers.DoJSON("POST", c.api("solicitudes", strconv.FormatInt(id, 10), "invitar_candidato"), headers, map[string]interface{}{}, &resp, c.cfg.RequestTimeout)
	metrics.ObserveOutbound("core", "solicitudes_invitar", start, err)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
