package types

import (
	"context"
	"fmt"
	"strconv"

	"jsonapi/internal/app/client"
)

type contextKey string

// ClientAppKey - ключ контекста, под которым лежит *client.App
const ClientAppKey contextKey = "app"

// AppFrom достает приложение из контекста команды
func AppFrom(ctx context.Context) (*client.App, error) {
	app, ok := ctx.Value(ClientAppKey).(*client.App)
	if !ok || app == nil {
		return nil, fmt.Errorf("приложение не инициализировано")
	}
	return app, nil
}

// ParseID разбирает положительный идентификатор из аргумента
func ParseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("неверный ID %q: %w", arg, err)
	}
	if id <= 0 {
		return 0, fmt.Errorf("ID должен быть положительным, получено %d", id)
	}
	return id, nil
}
