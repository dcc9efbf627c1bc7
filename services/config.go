package services

import (
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	beego "github.com/beego/beego/v2/server/web"
)

// Config centraliza la configuración del MID: ubicación del API core, tiempos
// del sondeo de notificaciones y parámetros del registro de consentimientos.
type Config struct {
	AppName               string
	HTTPPort              int
	RunMode               string
	CoreAPIBaseURL        string
	GeoAPIBaseURL         string
	RequestTimeout        time.Duration
	ConsentsDir           string
	GeoCacheTTL           time.Duration
	NotificacionesPoll    time.Duration
	NotificacionesIdleMax time.Duration
	LoginRatePorSeg       float64
	LoginRateBurst        int
}

var (
	cfg  Config
	once sync.Once
)

// GetConfig devuelve la configuración cargada desde variables de entorno o app.conf.
func GetConfig() Config {
	once.Do(func() {
		cfg = Config{
			AppName:               getString("APP_NAME", "appname", "estudios_mid"),
			HTTPPort:              getInt("HTTP_PORT", "httpport", 8080),
			RunMode:               getString("RUN_MODE", "runmode", "dev"),
			CoreAPIBaseURL:        normalizeBase(getString("CORE_API_BASE_URL", "core_api_base_url", "")),
			GeoAPIBaseURL:         normalizeBase(getString("GEO_API_BASE_URL", "geo_api_base_url", "")),
			RequestTimeout:        time.Duration(getInt("REQUEST_TIMEOUT_MS", "request_timeout_ms", 10000)) * time.Millisecond,
			ConsentsDir:           getString("CONSENTS_DIR", "consents_dir", "data/consents"),
			GeoCacheTTL:           time.Duration(getInt("GEO_CACHE_TTL_MIN", "geo_cache_ttl_min", 1440)) * time.Minute,
			NotificacionesPoll:    time.Duration(getInt("NOTIFICACIONES_POLL_SEG", "notificaciones_poll_seg", 15)) * time.Second,
			NotificacionesIdleMax: time.Duration(getInt("NOTIFICACIONES_IDLE_MIN", "notificaciones_idle_min", 5)) * time.Minute,
			LoginRatePorSeg:       getFloat("LOGIN_RATE_POR_SEG", "login_rate_por_seg", 1),
			LoginRateBurst:        getInt("LOGIN_RATE_BURST", "login_rate_burst", 5),
		}

		if cfg.CoreAPIBaseURL == "" {
			panic("CORE_API_BASE_URL no configurado")
		}
		// El servicio geográfico vive en el core salvo que se configure aparte.
		if cfg.GeoAPIBaseURL == "" {
			cfg.GeoAPIBaseURL = cfg.CoreAPIBaseURL
		}
	})
	return cfg
}

func getString(envKey, confKey, def string) string {
	if val := strings.TrimSpace(os.Getenv(envKey)); val != "" {
		return val
	}
	if val, err := beego.AppConfig.String(confKey); err == nil && strings.TrimSpace(val) != "" {
		return val
	}
	return def
}

func getInt(envKey, confKey string, def int) int {
	if val := strings.TrimSpace(os.Getenv(envKey)); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	if val, err := beego.AppConfig.Int(confKey); err == nil {
		return val
	}
	return def
}

func getFloat(envKey, confKey string, def float64) float64 {
	if val := strings.TrimSpace(os.Getenv(envKey)); val != "" {
		if parsed, err := strconv.ParseFloat(val, 64); err == nil {
			return parsed
		}
	}
	if val, err := beego.AppConfig.Float(confKey); err == nil {
		return val
	}
	return def
}

func normalizeBase(value string) string {
	return strings.TrimSpace(value)
}

// BuildURL compone una URL asegurando que no haya dobles slashes.
func BuildURL(base string, elems ...string) string {
	trimmed := strings.TrimSuffix(base, "/")
	for _, e := range elems {
		trimmed += "/" + strings.Trim(e, "/")
	}
	return trimmed
}
