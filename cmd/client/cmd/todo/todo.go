package todo

import (
	"fmt"

	"github.com/spf13/cobra"

	"jsonapi/cmd/client/cmd/output"
	"jsonapi/cmd/client/cmd/types"
)

var listFormat string

// TodoCmd - родительская команда для задач
var TodoCmd = &cobra.Command{
	Use:   "todo",
	Short: "Задачи пользователя",
}

var ListCmd = &cobra.Command{
	Use:   "list [userID]",
	Short: "Все задачи пользователя",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.AppFrom(cmd.Context())
		if err != nil {
			return err
		}

		userID, err := types.ParseID(args[0])
		if err != nil {
			return err
		}

		todos, err := app.ListUserTodos(cmd.Context(), userID)
		if err != nil {
			return fmt.Errorf("ошибка получения задач: %w", err)
		}

		return output.PrintCollection(cmd.OutOrStdout(), todos, listFormat)
	},
}

var OpenCmd = &cobra.Command{
	Use:   "open [userID]",
	Short: "Незавершенные задачи пользователя",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.AppFrom(cmd.Context())
		if err != nil {
			return err
		}

		userID, err := types.ParseID(args[0])
		if err != nil {
			return err
		}

		return app.PrintOpenTodos(cmd.Context(), cmd.OutOrStdout(), userID)
	},
}

func init() {
	output.AddFormatFlag(ListCmd, &listFormat)
}
