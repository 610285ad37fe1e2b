package item

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

var bearer = []map[string][]string{{"bearer": {}}}

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "items-list",
		Method:      http.MethodGet,
		Path:        "/api/items",
		Summary:     "Список элементов пользователя",
		Description: "Элементы упорядочены по возрастанию позиции.",
		Tags:        []string{"items"},
		Security:    bearer,
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "items-create",
		Method:        http.MethodPost,
		Path:          "/api/items",
		Summary:       "Создать элемент",
		Description:   "Элемент добавляется в конец списка владельца.",
		Tags:          []string{"items"},
		Security:      bearer,
		DefaultStatus: http.StatusCreated,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "items-update",
		Method:      http.MethodPut,
		Path:        "/api/items/{id}",
		Summary:     "Обновить элемент",
		Tags:        []string{"items"},
		Security:    bearer,
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "items-delete",
		Method:      http.MethodDelete,
		Path:        "/api/items/{id}",
		Summary:     "Удалить элемент",
		Tags:        []string{"items"},
		Security:    bearer,
		Middlewares: h.middleware,
	}
}

func (h *Handler) togglePinOp() huma.Operation {
	return huma.Operation{
		OperationID: "items-toggle-pin",
		Method:      http.MethodPatch,
		Path:        "/api/items/{id}/toggle-pin",
		Summary:     "Закрепить или открепить элемент",
		Tags:        []string{"items"},
		Security:    bearer,
		Middlewares: h.middleware,
	}
}

func (h *Handler) reorderOp() huma.Operation {
	return huma.Operation{
		OperationID: "items-reorder",
		Method:      http.MethodPatch,
		Path:        "/api/items/reorder",
		Summary:     "Переупорядочить элементы",
		Description: "Задает новые позиции. Повторный запрос с тем же телом ничего не меняет.",
		Tags:        []string{"items"},
		Security:    bearer,
		Middlewares: h.middleware,
	}
}
