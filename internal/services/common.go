package services

import (
	stdctx "context"

	beegocontext "github.com/beego/beego/v2/server/web/context"
)

func requestContext(ctx *beegocontext.Context) stdctx.Context {
	if ctx != nil && ctx.Request != nil {
		return ctx.Request.Context()
	}
	return stdctx.Background()
}
