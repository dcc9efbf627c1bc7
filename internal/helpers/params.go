package helpers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beego/beego/v2/server/web/context"
)

// ParamInt extrae un parámetro de ruta como entero.
func ParamInt(ctx *context.Context, name string) (int64, error) {
	if ctx == nil {
		return 0, fmt.Errorf("contexto nil")
	}
	raw := strings.TrimSpace(ctx.Input.Param(name))
	if raw == "" {
		return 0, fmt.Errorf("parametro %s vacío", name)
	}
	val, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parametro %s inválido", name)
	}
	return val, nil
}

// QueryInt extrae un parámetro de query como entero; devuelve 0 si está ausente.
func QueryInt(ctx *context.Context, name string) (int64, bool, error) {
	raw := strings.TrimSpace(ctx.Input.Query(name))
	if raw == "" {
		return 0, false, nil
	}
	val, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("parametro %s inválido", name)
	}
	return val, true, nil
}
