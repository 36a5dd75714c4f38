package post

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) userPostsOp() huma.Operation {
	return huma.Operation{
		OperationID: "user-posts-list",
		Method:      http.MethodGet,
		Path:        "/users/{id}/posts",
		Summary:     "Посты пользователя",
		Tags:        []string{"posts"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) postCommentsOp() huma.Operation {
	return huma.Operation{
		OperationID: "post-comments-list",
		Method:      http.MethodGet,
		Path:        "/posts/{id}/comments",
		Summary:     "Комментарии к посту",
		Tags:        []string{"comments"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) userCommentsOp() huma.Operation {
	return huma.Operation{
		OperationID: "user-comments-list",
		Method:      http.MethodGet,
		Path:        "/users/{id}/comments",
		Summary:     "Комментарии ко всем постам пользователя",
		Tags:        []string{"comments"},
		Middlewares: h.middleware,
	}
}
