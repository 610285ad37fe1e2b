package user

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

var bearer = []map[string][]string{{"bearer": {}}}

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "users-list",
		Method:      http.MethodGet,
		Path:        "/api/users",
		Summary:     "Список пользователей",
		Tags:        []string{"users"},
		Security:    bearer,
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "users-create",
		Method:        http.MethodPost,
		Path:          "/api/users",
		Summary:       "Создать пользователя",
		Description:   "Доступно только администратору.",
		Tags:          []string{"users"},
		Security:      bearer,
		DefaultStatus: http.StatusCreated,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "users-update",
		Method:      http.MethodPut,
		Path:        "/api/users/{id}",
		Summary:     "Обновить пользователя",
		Tags:        []string{"users"},
		Security:    bearer,
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "users-delete",
		Method:      http.MethodDelete,
		Path:        "/api/users/{id}",
		Summary:     "Удалить пользователя",
		Description: "Удалить собственную учетную запись нельзя.",
		Tags:        []string{"users"},
		Security:    bearer,
		Middlewares: h.middleware,
	}
}

func (h *Handler) toggleVerifiedOp() huma.Operation {
	return huma.Operation{
		OperationID: "users-toggle-verified",
		Method:      http.MethodPatch,
		Path:        "/api/users/{id}/toggle-verified",
		Summary:     "Переключить подтверждение пользователя",
		Tags:        []string{"users"},
		Security:    bearer,
		Middlewares: h.middleware,
	}
}
