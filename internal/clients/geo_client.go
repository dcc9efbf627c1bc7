package clients

import (
	"context"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/LeitoBarrera/estudios_mid/helpers"
	"github.com/LeitoBarrera/estudios_mid/internal/metrics"
	"github.com/LeitoBarrera/estudios_mid/models"
	rootservices "github.com/LeitoBarrera/estudios_mid/services"
)

// GeoClient consulta el servicio geográfico (departamentos y municipios de
// Colombia) expuesto bajo /api/geo/. Son datos de referencia, no de negocio:
// las llamadas pasan por un circuit breaker y la capa de servicio cachea 24h.
type GeoClient struct {
	cfg     rootservices.Config
	breaker *gobreaker.CircuitBreaker[[]geoRegistro]
}

// geoRegistro tolera las dos formas observadas del upstream: {id, nombre} del
// core y {id, name} de la fuente original que el core reexpone.
type geoRegistro struct {
	ID     interface{} `json:"id"`
	Nombre string      `json:"nombre"`
	Name   string      `json:"name"`
}

func (r geoRegistro) nombre() string {
	if r.Nombre != "" {
		return r.Nombre
	}
	return r.Name
}

var (
	geoClient     *GeoClient
	geoClientOnce sync.Once
)

// Geo devuelve un cliente singleton del servicio geográfico.
func Geo() *GeoClient {
	geoClientOnce.Do(func() {
		geoClient = &GeoClient{
			cfg: rootservices.GetConfig(),
			breaker: gobreaker.NewCircuitBreaker[[]geoRegistro](gobreaker.Settings{
				Name:    "geo",
				Timeout: 30 * time.Second,
				ReadyToTrip: func(counts gobreaker.Counts) bool {
					return counts.ConsecutiveFailures >= 3
				},
			}),
		}
	})
	return geoClient
}

// Departamentos trae el listado completo de departamentos normalizado a id/nombre.
func (c *GeoClient) Departamentos(ctx context.Context) ([]models.GeoLugar, error) {
	endpoint := rootservices.BuildURL(c.cfg.GeoAPIBaseURL, "api", "geo", "departamentos") + "/"
	return c.fetch(ctx, endpoint, "geo_departamentos")
}

// Municipios trae los municipios de un departamento normalizados a id/nombre.
func (c *GeoClient) Municipios(ctx context.Context, depID string) ([]models.GeoLugar, error) {
	endpoint := rootservices.BuildURL(c.cfg.GeoAPIBaseURL, "api", "geo", "municipios") + "/?dep_id=" + url.QueryEscape(depID)
	return c.fetch(ctx, endpoint, "geo_municipios")
}

func (c *GeoClient) fetch(ctx context.Context, endpoint, operacion string) ([]models.GeoLugar, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	start := time.Now()
	raw, err := c.breaker.Execute(func() ([]geoRegistro, error) {
		var rows []geoRegistro
		if err := helpers.DoJSON("GET", endpoint, nil, nil, &rows, c.cfg.RequestTimeout); err != nil {
			return nil, err
		}
		return rows, nil
	})
	metrics.ObserveOutbound("geo", operacion, start, err)
	if err != nil {
		return nil, err
	}

	lugares := make([]models.GeoLugar, 0, len(raw))
	for _, r := range raw {
		lugares = append(lugares, models.GeoLugar{ID: stringifyID(r.ID), Nombre: r.nombre()})
	}
	return lugares, nil
}

func stringifyID(v interface{}) string {
	switch id := v.(type) {
	case string:
		return id
	case float64:
		return strconv.FormatInt(int64(id), 10)
	default:
		return ""
	}
}
