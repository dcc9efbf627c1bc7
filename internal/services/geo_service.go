package services

import (
	"strings"
	"sync"
	"time"

	"github.com/beego/beego/v2/server/web/context"

	"github.com/LeitoBarrera/estudios_mid/helpers"
	"github.com/LeitoBarrera/estudios_mid/internal/clients"
	"github.com/LeitoBarrera/estudios_mid/models"
	rootservices "github.com/LeitoBarrera/estudios_mid/services"
)

// Departamentos y municipios cambian casi nunca: se cachean 24h en memoria y
// el filtro por texto se aplica sobre la copia cacheada.

type geoCacheEntry struct {
	data      []models.GeoLugar
	expiresAt time.Time
}

var (
	geoCacheMu     sync.RWMutex
	geoDeptosCache geoCacheEntry
	geoMunisCache  = map[string]geoCacheEntry{}
)

// Departamentos lista los departamentos, filtrados por q si viene.
func Departamentos(ctx *context.Context, q string) ([]models.GeoLugar, error) {
	geoCacheMu.RLock()
	entry := geoDeptosCache
	geoCacheMu.RUnlock()

	if len(entry.data) == 0 || time.Now().After(entry.expiresAt) {
		data, err := clients.Geo().Departamentos(requestContext(ctx))
		if err != nil {
			return nil, helpers.AsAppError(err, "error consultando departamentos")
		}
		entry = geoCacheEntry{data: data, expiresAt: time.Now().Add(rootservices.GetConfig().GeoCacheTTL)}
		geoCacheMu.Lock()
		geoDeptosCache = entry
		geoCacheMu.Unlock()
	}
	return filtrarLugares(entry.data, q), nil
}

// Municipios lista las ciudades de un departamento, filtradas por q si viene.
func Municipios(ctx *context.Context, depID, q string) ([]models.GeoLugar, error) {
	depID = strings.TrimSpace(depID)
	if depID == "" {
		return nil, helpers.NewAppError(400, "falta dep_id", nil)
	}

	geoCacheMu.RLock()
	entry, ok := geoMunisCache[depID]
	geoCacheMu.RUnlock()

	if !ok || time.Now().After(entry.expiresAt) {
		data, err := clients.Geo().Municipios(requestContext(ctx), depID)
		if err != nil {
			return nil, helpers.AsAppError(err, "error consultando municipios")
		}
		entry = geoCacheEntry{data: data, expiresAt: time.Now().Add(rootservices.GetConfig().GeoCacheTTL)}
		geoCacheMu.Lock()
		geoMunisCache[depID] = entry
		geoCacheMu.Unlock()
	}
	return filtrarLugares(entry.data, q), nil
}

func filtrarLugares(lugares []models.GeoLugar, q string) []models.GeoLugar {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		out := make([]models.GeoLugar, len(lugares))
		copy(out, lugares)
		return out
	}
	out := []models.GeoLugar{}
	for _, l := range lugares {
		if strings.Contains(strings.ToLower(l.Nombre), q) {
			out = append(out, l)
		}
	}
	return out
}
