package clients

import (
	"context"
	"io"
	"strconv"
	"time"

	"github.com/LeitoBarrera/estudios_mid/helpers"
	"github.com/LeitoBarrera/estudios_mid/internal/metrics"
	"github.com/LeitoBarrera/estudios_mid/models"
)

// ListDocumentos trae los soportes del candidato autenticado.
func (c *CoreClient) ListDocumentos(ctx context.Context, headers map[string]string) ([]models.Documento, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	start := time.Now()
	var docs []models.Documento
	err := helpers.DoJSON("GET", c.api("documentos"), headers, nil, &docs, c.cfg.RequestTimeout)
	metrics.ObserveOutbound("core", "documentos_list", start, err)
	if err != nil {
		return nil, err
	}
	return docs, nil
}

// UploadDocumento sube un soporte nuevo; siempre multipart (tipo + archivo).
func (c *CoreClient) UploadDocumento(ctx context.Context, headers map[string]string, tipo, fileName string, file io.Reader) (*models.Documento, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	start := time.Now()
	var doc models.Documento
	fields := map[string]string{"tipo": tipo}
	err := helpers.DoMultipart("POST", c.api("documentos"), headers, fields, "archivo", fileName, file, &doc, c.cfg.RequestTimeout)
	metrics.ObserveOutbound("core", "documentos_upload", start, err)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// DeleteDocumento elimina un soporte.
func (c *CoreClient) DeleteDocumento(ctx context.Context, headers map[string]string, id int64) error {
	if err := ctxErr(ctx); err != nil {
		return err
	}
	start := time.Now()
	err := helpers.DoJSON("DELETE", c.api("documentos", strconv.FormatInt(id, 10)), headers, nil, nil, c.cfg.RequestTimeout)
	metrics.ObserveOutbound("core", "documentos_delete", start, err)
	return err
}
