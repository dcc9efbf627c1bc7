package helpers

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	beectx "github.com/beego/beego/v2/server/web/context"
	"github.com/golang-jwt/jwt/v5"

	"github.com/LeitoBarrera/estudios_mid/internal/clients"
	"github.com/LeitoBarrera/estudios_mid/models"
)

// La sesión es explícita: se deriva del token de la petición y viaja como valor,
// nunca como estado ambiente. El rol sale de los claims del JWT cuando viene y,
// si no, de /api/auth/me/ con una caché corta para no golpear el core en cada
// petición del sondeo.

const ctxSesionKey = "__estudios_mid_sesion"

var (
	// ErrSinAutorizacion indica que falta el header Authorization.
	ErrSinAutorizacion = errors.New("authorization header missing")
	// ErrTokenInvalido indica que el token no tiene forma de JWT.
	ErrTokenInvalido = errors.New("invalid bearer token")
	// ErrRolInsuficiente indica que el rol de la sesión no alcanza.
	ErrRolInsuficiente = errors.New("rol insuficiente")
)

// Sesion encapsula la identidad efectiva de la petición.
type Sesion struct {
	Token  string
	Perfil models.PerfilUsuario
}

// TokenHash identifica la sesión sin exponer el token (llave del sondeo).
func (s Sesion) TokenHash() string {
	sum := sha256.Sum256([]byte(s.Token))
	return hex.EncodeToString(sum[:8])
}

type perfilCacheEntry struct {
	perfil models.PerfilUsuario
	hasta  time.Time
}

var (
	perfilCache   = map[string]perfilCacheEntry{}
	perfilCacheMu sync.Mutex
)

const perfilCacheTTL = 60 * time.Second

// SesionDe resuelve la sesión de la petición y la cachea en el contexto.
func SesionDe(ctx *beectx.Context) (*Sesion, error) {
	if cached := ctx.Input.GetData(ctxSesionKey); cached != nil {
		if ses, ok := cached.(*Sesion); ok {
			return ses, nil
		}
	}

	token := BearerToken(ctx)
	if token == "" {
		return nil, ErrSinAutorizacion
	}

	perfil, err := resolverPerfil(ctx, token)
	if err != nil {
		return nil, err
	}

	ses := &Sesion{Token: token, Perfil: *perfil}
	ctx.Input.SetData(ctxSesionKey, ses)
	return ses, nil
}

// RequireRol valida que la sesión tenga alguno de los roles requeridos.
func RequireRol(ctx *beectx.Context, roles ...string) (*Sesion, error) {
	ses, err := SesionDe(ctx)
	if err != nil {
		return nil, err
	}
	if len(roles) == 0 {
		return ses, nil
	}
	actual := strings.ToUpper(strings.TrimSpace(ses.Perfil.Rol))
	for _, r := range roles {
		if actual == strings.ToUpper(strings.TrimSpace(r)) {
			return ses, nil
		}
	}
	return nil, fmt.Errorf("%w: se requiere %s", ErrRolInsuficiente, strings.Join(roles, "|"))
}

func resolverPerfil(ctx *beectx.Context, token string) (*models.PerfilUsuario, error) {
	if perfil := perfilDesdeClaims(token); perfil != nil {
		return perfil, nil
	}

	hash := sha256.Sum256([]byte(token))
	key := hex.EncodeToString(hash[:])

	perfilCacheMu.Lock()
	if entry, ok := perfilCache[key]; ok && time.Now().Before(entry.hasta) {
		perfilCacheMu.Unlock()
		perfil := entry.perfil
		return &perfil, nil
	}
	perfilCacheMu.Unlock()

	perfil, err := clients.Core().Me(ctx.Request.Context(), map[string]string{
		"Authorization": "Bearer " + token,
	})
	if err != nil {
		return nil, err
	}

	perfilCacheMu.Lock()
	perfilCache[key] = perfilCacheEntry{perfil: *perfil, hasta: time.Now().Add(perfilCacheTTL)}
	perfilCacheMu.Unlock()
	return perfil, nil
}

// perfilDesdeClaims extrae el perfil de los claims sin verificar la firma: el
// core valida el token en cada llamada; aquí solo se necesita el rol para rutear.
func perfilDesdeClaims(token string) *models.PerfilUsuario {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil
	}

	rol, _ := claims["rol"].(string)
	if strings.TrimSpace(rol) == "" {
		return nil
	}

	perfil := &models.PerfilUsuario{Rol: strings.ToUpper(strings.TrimSpace(rol))}
	if sub, ok := claims["user_id"].(float64); ok {
		perfil.ID = int64(sub)
	}
	if username, ok := claims["username"].(string); ok {
		perfil.Username = username
	}
	if email, ok := claims["email"].(string); ok {
		perfil.Email = email
	}
	if empresa, ok := claims["empresa_id"].(float64); ok {
		id := int64(empresa)
		perfil.EmpresaID = &id
	}
	return perfil
}
