package helpers

import (
	"strings"

	"github.com/beego/beego/v2/server/web/context"
	"github.com/google/uuid"
)

// CopyRequestHeaders propaga hacia el core los headers de la petición entrante
// que interesan al rastreo y la autenticación.
func CopyRequestHeaders(ctx *context.Context) map[string]string {
	headers := make(map[string]string)
	if ctx == nil {
		return headers
	}
	if auth := strings.TrimSpace(ctx.Input.Header("Authorization")); auth != "" {
		headers["Authorization"] = auth
	}
	if lang := strings.TrimSpace(ctx.Input.Header("Accept-Language")); lang != "" {
		headers["Accept-Language"] = lang
	}
	headers["X-Request-Id"] = EnsureRequestID(ctx)
	return headers
}

// EnsureRequestID devuelve el X-Request-Id entrante o genera uno nuevo para
// correlacionar la petición con las llamadas salientes al core.
func EnsureRequestID(ctx *context.Context) string {
	if ctx != nil {
		if rid := strings.TrimSpace(ctx.Input.Header("X-Request-Id")); rid != "" {
			return rid
		}
	}
	return uuid.NewString()
}

// BearerToken extrae el token crudo del header Authorization.
func BearerToken(ctx *context.Context) string {
	if ctx == nil {
		return ""
	}
	header := strings.TrimSpace(ctx.Input.Header("Authorization"))
	if header == "" {
		return ""
	}
	if !strings.HasPrefix(strings.ToLower(header), "bearer ") {
		return ""
	}
	return strings.TrimSpace(header[7:])
}
