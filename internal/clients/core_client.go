package clients

import (
	"context"
	"sync"
	"time"

	"github.com/LeitoBarrera/estudios_mid/helpers"
	"github.com/LeitoBarrera/estudios_mid/internal/dto"
	"github.com/LeitoBarrera/estudios_mid/internal/metrics"
	"github.com/LeitoBarrera/estudios_mid/models"
	rootservices "github.com/LeitoBarrera/estudios_mid/services"
)

// CoreClient agrupa las operaciones contra el API core que necesita el MID.
// Todas las llamadas propagan los headers de la petición entrante (token del
// usuario incluido): el core es quien decide visibilidad y permisos finales.
type CoreClient struct {
	cfg rootservices.Config
}

var (
	coreClient     *CoreClient
	coreClientOnce sync.Once
)

// Core devuelve un cliente singleton listo para llamar al API core.
func Core() *CoreClient {
	coreClientOnce.Do(func() {
		coreClient = &CoreClient{
			cfg: rootservices.GetConfig(),
		}
	})
	return coreClient
}

func ctxErr(ctx context.Context) error {
	if ctx == nil {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}

func (c *CoreClient) api(elems ...string) string {
	parts := append([]string{"api"}, elems...)
	return rootservices.BuildURL(c.cfg.CoreAPIBaseURL, parts...) + "/"
}

// Login intercambia credenciales por tokens JWT del core.
func (c *CoreClient) Login(ctx context.Context, username, password string) (*dto.TokensDTO, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	start := time.Now()
	body := map[string]string{"username": username, "password": password}
	var tokens dto.TokensDTO
	err := helpers.DoJSON("POST", c.api("auth", "login"), nil, body, &tokens, c.cfg.RequestTimeout)
	metrics.ObserveOutbound("core", "auth_login", start, err)
	if err != nil {
		return nil, err
	}
	return &tokens, nil
}

// Me obtiene el perfil del usuario autenticado; su rol decide el enrutamiento.
func (c *CoreClient) Me(ctx context.Context, headers map[string]string) (*models.PerfilUsuario, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	start := time.Now()
	var perfil models.PerfilUsuario
	err := helpers.DoJSON("GET", c.api("auth", "me"), headers, nil, &perfil, c.cfg.RequestTimeout)
	metrics.ObserveOutbound("core", "auth_me", start, err)
	if err != nil {
		return nil, err
	}
	return &perfil, nil
}
