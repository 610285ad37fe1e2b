package csrf

import (
	"context"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"

	"itemdesk/internal/app/server/api/http/middleware/auth"
	"itemdesk/internal/utils/logger"
)

type verifierFunc func(token, csrf string) bool

func (f verifierFunc) VerifyCSRF(token, csrf string) bool { return f(token, csrf) }

func setup(t *testing.T) humatest.TestAPI {
	_, api := humatest.New(t)

	verifier := verifierFunc(func(token, csrf string) bool {
		return token == "session" && csrf == "expected"
	})
	withToken := func(ctx huma.Context, next func(huma.Context)) {
		next(huma.WithContext(ctx, auth.WithToken(ctx.Context(), "session")))
	}
	mws := huma.Middlewares{withToken, New(api, verifier, logger.Discard()).Middleware()}

	for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodDelete} {
		huma.Register(api, huma.Operation{
			OperationID: "op-" + method,
			Method:      method,
			Path:        "/thing",
			Middlewares: mws,
		}, func(context.Context, *struct{}) (*struct{}, error) {
			return nil, nil
		})
	}

	return api
}

func TestCSRF_Middleware(t *testing.T) {
	api := setup(t)

	t.Run("safe method passes without header", func(t *testing.T) {
		resp := api.Get("/thing")
		assert.Less(t, resp.Code, 300)
	})

	t.Run("mutating request without header", func(t *testing.T) {
		resp := api.Post("/thing")
		assert.Equal(t, http.StatusForbidden, resp.Code)
	})

	t.Run("mutating request with wrong token", func(t *testing.T) {
		resp := api.Delete("/thing", Header+": forged")
		assert.Equal(t, http.StatusForbidden, resp.Code)
	})

	t.Run("mutating request with valid token", func(t *testing.T) {
		resp := api.Post("/thing", Header+": expected")
		assert.Less(t, resp.Code, 300)
	})
}
