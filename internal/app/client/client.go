package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"golang.org/x/exp/slog"

	"jsonapi/internal/app/client/config"
	"jsonapi/internal/domain/record"
)

// App - клиент удаленного каталога пользователей.
// Все операции синхронные, каждая завершается до начала следующей.
type App struct {
	config     *config.Config
	log        *slog.Logger
	httpClient *httpClient
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	httpCl, err := NewHTTPClient(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации HTTP клиента: %w", err)
	}

	return &App{
		config:     cfg,
		log:        log,
		httpClient: httpCl,
	}, nil
}

// Policy возвращает политику проверки статусов
func (a *App) Policy() *StatusPolicy {
	return a.httpClient.policy
}

// CreateUser создает пользователя и возвращает тело ответа как есть
func (a *App) CreateUser(ctx context.Context, fields *record.Fields) (string, error) {
	resp, err := a.httpClient.do(ctx, OpCreateUser, http.MethodPost, a.config.Endpoints.Users, nil, fields.Bytes())
	if err != nil {
		return "", err
	}
	return string(resp.body), nil
}

// UpdateUser обновляет пользователя по ID
func (a *App) UpdateUser(ctx context.Context, id int, fields *record.Fields) (string, error) {
	resp, err := a.httpClient.do(ctx, OpUpdateUser, http.MethodPut, expand(a.config.Endpoints.User, id), nil, fields.Bytes())
	if err != nil {
		return "", err
	}
	return string(resp.body), nil
}

// DeleteUser удаляет пользователя по ID
func (a *App) DeleteUser(ctx context.Context, id int) (string, error) {
	resp, err := a.httpClient.do(ctx, OpDeleteUser, http.MethodDelete, expand(a.config.Endpoints.User, id), nil, nil)
	if err != nil {
		return "", err
	}
	return string(resp.body), nil
}

// ListUsers получает всех пользователей
func (a *App) ListUsers(ctx context.Context) (record.Collection, error) {
	return a.getCollection(ctx, OpListUsers, a.config.Endpoints.Users, nil)
}

// GetUser получает пользователя по ID
func (a *App) GetUser(ctx context.Context, id int) (record.Record, error) {
	resp, err := a.httpClient.do(ctx, OpGetUser, http.MethodGet, expand(a.config.Endpoints.User, id), nil, nil)
	if err != nil {
		return record.Record{}, err
	}

	rec, err := record.Parse(resp.body)
	if err != nil {
		return record.Record{}, fmt.Errorf("%s: %w", OpGetUser, err)
	}
	return rec, nil
}

// FindUsersByUsername ищет пользователей по username
func (a *App) FindUsersByUsername(ctx context.Context, username string) (record.Collection, error) {
	query := url.Values{}
	query.Set("username", username)
	return a.getCollection(ctx, OpFindUsers, a.config.Endpoints.Users, query)
}

// ListUserPosts получает посты пользователя
func (a *App) ListUserPosts(ctx context.Context, userID int) (record.Collection, error) {
	return a.getCollection(ctx, OpListUserPosts, expand(a.config.Endpoints.UserPosts, userID), nil)
}

// ListPostComments получает комментарии. В зависимости от comments_scope
// id - это идентификатор поста или пользователя.
func (a *App) ListPostComments(ctx context.Context, id int) (record.Collection, error) {
	return a.getCollection(ctx, OpListPostComments, expand(a.config.CommentsPath(), id), nil)
}

// ListUserTodos получает задачи пользователя
func (a *App) ListUserTodos(ctx context.Context, userID int) (record.Collection, error) {
	return a.getCollection(ctx, OpListUserTodos, expand(a.config.Endpoints.UserTodos, userID), nil)
}

func (a *App) getCollection(ctx context.Context, op Operation, path string, query url.Values) (record.Collection, error) {
	resp, err := a.httpClient.do(ctx, op, http.MethodGet, path, query, nil)
	if err != nil {
		return nil, err
	}

	c, err := record.ParseCollection(resp.body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return c, nil
}
