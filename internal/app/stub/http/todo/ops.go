package todo

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) userTodosOp() huma.Operation {
	return huma.Operation{
		OperationID: "user-todos-list",
		Method:      http.MethodGet,
		Path:        "/users/{id}/todos",
		Summary:     "Задачи пользователя",
		Tags:        []string{"todos"},
		Middlewares: h.middleware,
	}
}
