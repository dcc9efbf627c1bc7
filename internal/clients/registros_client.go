package clients

import (
	"context"
	"io"
	"strconv"
	"time"

	"github.com/LeitoBarrera/estudios_mid/helpers"
	"github.com/LeitoBarrera/estudios_mid/internal/metrics"
)

// Registros académicos y laborales comparten el mismo contrato CRUD: JSON plano
// sin archivo, multipart cuando hay soporte adjunto. Cambia el recurso y el
// nombre del campo de archivo (academicos/archivo, laborales/certificado).

// RecursoRegistro identifica un tipo de registro del candidato en el core.
type RecursoRegistro struct {
	Ruta         string
	CampoArchivo string
}

var (
	RecursoAcademicos = RecursoRegistro{Ruta: "academicos", CampoArchivo: "archivo"}
	RecursoLaborales  = RecursoRegistro{Ruta: "laborales", CampoArchivo: "certificado"}
)

// ListRegistros trae los registros del candidato autenticado.
func (c *CoreClient) ListRegistros(ctx context.Context, headers map[string]string, recurso RecursoRegistro) ([]map[string]interface{}, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	start := time.Now()
	var rows []map[string]interface{}
	err := helpers.DoJSON("GET", c.api(recurso.Ruta), headers, nil, &rows, c.cfg.RequestTimeout)
	metrics.ObserveOutbound("core", recurso.Ruta+"_list", start, err)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// CreateRegistro crea un registro. Con archivo adjunto la llamada es multipart;
// sin archivo viaja JSON plano, incluyendo nulls explícitos.
func (c *CoreClient) CreateRegistro(ctx context.Context, headers map[string]string, recurso RecursoRegistro, payload map[string]interface{}, fields map[string]string, fileName string, file io.Reader) (map[string]interface{}, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	start := time.Now()
	var row map[string]interface{}
	var err error
	if file != nil {
		err = helpers.DoMultipart("POST", c.api(recurso.Ruta), headers, fields, recurso.CampoArchivo, fileName, file, &row, c.cfg.RequestTimeout)
	} else {
		err = helpers.DoJSON("POST", c.api(recurso.Ruta), headers, payload, &row, c.cfg.RequestTimeout)
	}
	metrics.ObserveOutbound("core", recurso.Ruta+"_create", start, err)
	if err != nil {
		return nil, err
	}
	return row, nil
}

// UpdateRegistro aplica un parche parcial sobre un registro existente.
func (c *CoreClient) UpdateRegistro(ctx context.Context, headers map[string]string, recurso RecursoRegistro, id int64, payload map[string]interface{}, fields map[string]string, fileName string, file io.Reader) (map[string]interface{}, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	endpoint := c.api(recurso.Ruta, strconv.FormatInt(id, 10))
	start := time.Now()
	var row map[string]interface{}
	var err error
	if file != nil {
		err = helpers.DoMultipart("PATCH", endpoint, headers, fields, recurso.CampoArchivo, fileName, file, &row, c.cfg.RequestTimeout)
	} else {
		err = helpers.DoJSON("PATCH", endpoint, headers, payload, &row, c.cfg.RequestTimeout)
	}
	metrics.ObserveOutbound("core", recurso.Ruta+"_update", start, err)
	if err != nil {
		return nil, err
	}
	return row, nil
}

// DeleteRegistro elimina un registro. Exactamente una llamada por acción del
// usuario; la confirmación ocurre antes de llegar aquí.
func (c *CoreClient) DeleteRegistro(ctx context.Context, headers map[string]string, recurso RecursoRegistro, id int64) error {
	if err := ctxErr(ctx); err != nil {
		return err
	}
	start := time.Now()
	err := helpers.DoJSON("DELETE", c.api(recurso.Ruta, strconv.FormatInt(id, 10)), headers, nil, nil, c.cfg.RequestTimeout)
	metrics.ObserveOutbound("core", recurso.Ruta+"_delete", start, err)
	return err
}
