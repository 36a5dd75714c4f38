// Заглушка публичного REST API (users, posts, comments, todos) для тестов
// и локального запуска клиента без сети.
//
//GET    /users                 # Список (поддерживает ?username=)
//POST   /users                 # Создать (эхо + id, 201)
//GET    /users/{id}            # Получить
//PUT    /users/{id}            # Обновить (эхо)
//DELETE /users/{id}            # Удалить ({})
//GET    /users/{id}/posts      # Посты пользователя
//GET    /users/{id}/todos      # Задачи пользователя
//GET    /users/{id}/comments   # Комментарии к постам пользователя
//GET    /posts/{id}/comments   # Комментарии к посту

package stub

import (
	"jsonapi/internal/app/stub/data"
	"jsonapi/internal/app/stub/http/middleware/logger"
	postAPI "jsonapi/internal/app/stub/http/post"
	todoAPI "jsonapi/internal/app/stub/http/todo"
	userAPI "jsonapi/internal/app/stub/http/user"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"
)

type Handlers struct {
	User *userAPI.Handler
	Post *postAPI.Handler
	Todo *todoAPI.Handler
}

// New создает *chi.Mux со всеми операциями заглушки
func New(ds *data.Dataset, log *slog.Logger) *chi.Mux {
	if ds == nil {
		ds = data.Default()
	}

	mux := chi.NewMux()
	API := humachi.New(mux, huma.DefaultConfig("JSON Placeholder Stub", "1.0.0"))

	h := handlers(ds, log)
	h.User.SetupRoutes(API)
	h.Post.SetupRoutes(API)
	h.Todo.SetupRoutes(API)

	return mux
}

func handlers(ds *data.Dataset, log *slog.Logger) *Handlers {
	loggerMW := logger.New(log)
	middlewares := huma.Middlewares{loggerMW.Middleware()}

	return &Handlers{
		User: userAPI.NewHandler(ds, log, middlewares),
		Post: postAPI.NewHandler(ds, log, middlewares),
		Todo: todoAPI.NewHandler(ds, log, middlewares),
	}
}
