package metrics

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type getInput struct {
	ID int `path:"id"`
}

func TestMetrics_Middleware(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	_, api := humatest.New(t)
	huma.Register(api, huma.Operation{
		OperationID: "get-item",
		Method:      http.MethodGet,
		Path:        "/items/{id}",
		Middlewares: huma.Middlewares{m.Middleware()},
	}, func(_ context.Context, in *getInput) (*struct{}, error) {
		if in.ID == 0 {
			return nil, huma.Error404NotFound("not found")
		}
		return nil, nil
	})

	api.Get("/items/1")
	api.Get("/items/2")
	api.Get("/items/0")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues("GET", "/items/{id}", "204")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues("GET", "/items/{id}", "404")))

	count, err := testutil.GatherAndCount(reg, "itemdesk_http_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	err = testutil.GatherAndCompare(reg, strings.NewReader(`
# HELP itemdesk_http_requests_total Общее количество HTTP-запросов
# TYPE itemdesk_http_requests_total counter
itemdesk_http_requests_total{method="GET",path="/items/{id}",status="204"} 2
itemdesk_http_requests_total{method="GET",path="/items/{id}",status="404"} 1
`), "itemdesk_http_requests_total")
	assert.NoError(t, err)
}
