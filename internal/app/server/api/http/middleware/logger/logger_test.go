package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func setup(t *testing.T) (humatest.TestAPI, *bytes.Buffer) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))

	_, api := humatest.New(t)
	huma.Register(api, huma.Operation{
		OperationID: "ping",
		Method:      http.MethodGet,
		Path:        "/ping",
		Middlewares: huma.Middlewares{New(log).Middleware()},
	}, func(context.Context, *struct{}) (*struct{}, error) {
		return nil, nil
	})

	return api, &buf
}

func TestLogger_Middleware(t *testing.T) {
	t.Run("generates request id", func(t *testing.T) {
		api, buf := setup(t)

		resp := api.Get("/ping")

		id := resp.Header().Get(RequestIDHeader)
		assert.Len(t, id, 36)

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "HTTP request", entry["msg"])
		assert.Equal(t, id, entry["request_id"])
		assert.Equal(t, "GET", entry["method"])
		assert.Equal(t, "/ping", entry["path"])
		assert.Equal(t, "http_logger", entry["component"])
	})

	t.Run("keeps incoming request id", func(t *testing.T) {
		api, buf := setup(t)

		resp := api.Get("/ping", RequestIDHeader+": abc-123")

		assert.Equal(t, "abc-123", resp.Header().Get(RequestIDHeader))
		assert.Contains(t, buf.String(), `"request_id":"abc-123"`)
	})
}
