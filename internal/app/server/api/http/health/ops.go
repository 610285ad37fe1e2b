package health

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) healthCheckOp() huma.Operation {
	return huma.Operation{
		OperationID: "health-check",
		Method:      http.MethodGet,
		Path:        "/api/v1/health",
		Summary:     "Проверка состояния",
		Description: "Отвечает OK, если сервис и база данных доступны",
		Tags:        []string{"health"},
		Middlewares: h.middleware,
	}
}
