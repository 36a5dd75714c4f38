package client

import (
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/exp/slog"
)

// Operation - имя операции клиента, используется в логах и политике статусов
type Operation string

const (
	OpCreateUser       Operation = "create_user"
	OpUpdateUser       Operation = "update_user"
	OpDeleteUser       Operation = "delete_user"
	OpListUsers        Operation = "list_users"
	OpGetUser          Operation = "get_user"
	OpFindUsers        Operation = "find_users"
	OpListUserPosts    Operation = "list_user_posts"
	OpListPostComments Operation = "list_post_comments"
	OpListUserTodos    Operation = "list_user_todos"
)

var ErrUnexpectedStatus = errors.New("unexpected response status")

// DefaultExpectations возвращает ожидаемые статусы для всех операций
func DefaultExpectations() map[Operation]int {
	return map[Operation]int{
		OpCreateUser:       http.StatusCreated,
		OpUpdateUser:       http.StatusOK,
		OpDeleteUser:       http.StatusOK,
		OpListUsers:        http.StatusOK,
		OpGetUser:          http.StatusOK,
		OpFindUsers:        http.StatusOK,
		OpListUserPosts:    http.StatusOK,
		OpListPostComments: http.StatusOK,
		OpListUserTodos:    http.StatusOK,
	}
}

// StatusPolicy сверяет статус ответа с ожидаемым для операции.
// Несовпадение пишется в лог ошибок; в строгом режиме возвращается ошибка.
type StatusPolicy struct {
	log      *slog.Logger
	strict   bool
	expected map[Operation]int
}

func NewStatusPolicy(log *slog.Logger, strict bool) *StatusPolicy {
	return &StatusPolicy{
		log:      log.With(slog.String("component", "status_policy")),
		strict:   strict,
		expected: DefaultExpectations(),
	}
}

// Expect переопределяет ожидаемый статус операции
func (p *StatusPolicy) Expect(op Operation, status int) {
	p.expected[op] = status
}

// Expected возвращает ожидаемый статус операции
func (p *StatusPolicy) Expected(op Operation) int {
	if status, ok := p.expected[op]; ok {
		return status
	}
	return http.StatusOK
}

func (p *StatusPolicy) Check(op Operation, status int, body []byte) error {
	expected := p.Expected(op)
	if status == expected {
		return nil
	}

	p.log.Error("Неожиданный статус ответа",
		slog.String("op", string(op)),
		slog.Int("expected", expected),
		slog.Int("status", status),
		slog.String("body", string(body)),
	)

	if p.strict {
		return fmt.Errorf("%w: %s: ожидался %d, получен %d", ErrUnexpectedStatus, op, expected, status)
	}
	return nil
}
