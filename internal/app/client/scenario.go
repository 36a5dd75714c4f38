package client

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"jsonapi/internal/domain/record"
)

// Параметры демонстрационного прогона
const (
	scenarioUpdateID   = 4
	scenarioDeleteID   = 3
	scenarioGetID      = 2
	scenarioUsername   = "Karianne"
	scenarioExportUser = 1
	scenarioTodosUser  = 1
)

// RunScenario последовательно выполняет все операции клиента и печатает результаты в w.
func (a *App) RunScenario(ctx context.Context, w io.Writer) error {
	header := color.New(color.Bold, color.FgGreen)

	// Создание нового пользователя
	newUser := record.NewFields()
	for _, kv := range [][2]string{
		{"name", "New User"},
		{"username", "newuser"},
		{"email", "newuser@example.com"},
	} {
		if err := newUser.Set(kv[0], kv[1]); err != nil {
			return err
		}
	}

	created, err := a.CreateUser(ctx, newUser)
	if err != nil {
		return err
	}
	header.Fprintln(w, "Created User:")
	fmt.Fprintln(w, created)

	// Обновление существующего пользователя
	updatedUser := record.NewFields()
	if err := updatedUser.Set("name", "Updated User"); err != nil {
		return err
	}
	if err := updatedUser.Set("email", "updated@example.com"); err != nil {
		return err
	}

	updated, err := a.UpdateUser(ctx, scenarioUpdateID, updatedUser)
	if err != nil {
		return err
	}
	header.Fprintf(w, "\nUpdate User (ID %d):\n", scenarioUpdateID)
	fmt.Fprintln(w, updated)

	deleted, err := a.DeleteUser(ctx, scenarioDeleteID)
	if err != nil {
		return err
	}
	header.Fprintf(w, "\nResults delete user (ID %d):\n", scenarioDeleteID)
	fmt.Fprintln(w, deleted)

	users, err := a.ListUsers(ctx)
	if err != nil {
		return err
	}
	header.Fprintln(w, "\nAll Users:")
	for _, u := range users {
		fmt.Fprintln(w, u)
	}

	user, err := a.GetUser(ctx, scenarioGetID)
	if err != nil {
		return err
	}
	header.Fprintf(w, "\nUser with ID %d:\n", scenarioGetID)
	fmt.Fprintln(w, user)

	found, err := a.FindUsersByUsername(ctx, scenarioUsername)
	if err != nil {
		return err
	}
	header.Fprintln(w, "\nUsers with username:")
	for _, u := range found {
		fmt.Fprintln(w, u)
	}

	path, err := a.ExportLastPostComments(ctx, scenarioExportUser)
	if err != nil {
		return err
	}
	if path != "" {
		header.Fprintln(w, "\nComments saved to:")
		fmt.Fprintln(w, path)
	}

	header.Fprintln(w, "\nAll open task:")
	return a.PrintOpenTodos(ctx, w, scenarioTodosUser)
}
