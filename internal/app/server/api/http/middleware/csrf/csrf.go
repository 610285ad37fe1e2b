// Package csrf проверяет анти-подделочный заголовок на изменяющих запросах.
// Должен стоять после auth: токен сессии берется из контекста.
package csrf

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"itemdesk/internal/app/server/api/http/middleware/auth"
)

const Header = "X-CSRF-Token"

type Verifier interface {
	VerifyCSRF(token, csrf string) bool
}

type CSRF struct {
	api      huma.API
	verifier Verifier
	log      *slog.Logger
}

func New(api huma.API, verifier Verifier, log *slog.Logger) *CSRF {
	return &CSRF{
		api:      api,
		verifier: verifier,
		log:      log.With("component", "csrf_middleware"),
	}
}

func (c *CSRF) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		if safeMethod(ctx.Method()) {
			next(ctx)
			return
		}

		token, _ := auth.GetToken(ctx.Context())
		if !c.verifier.VerifyCSRF(token, ctx.Header(Header)) {
			c.log.Warn("csrf token mismatch", "method", ctx.Method(), "path", ctx.URL().Path)
			_ = huma.WriteErr(c.api, ctx, http.StatusForbidden, "CSRF token mismatch.")
			return
		}

		next(ctx)
	}
}

func safeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return false
}
