// cmd/client/cmd/run.go
package cmd

import (
	"github.com/spf13/cobra"

	"jsonapi/cmd/client/cmd/post"
	"jsonapi/cmd/client/cmd/todo"
	"jsonapi/cmd/client/cmd/types"
	"jsonapi/cmd/client/cmd/user"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Выполнить все операции по порядку",
	Long: `Последовательно выполняет:
	1. Создание пользователя (New User / newuser)
	2. Обновление пользователя с ID 4
	3. Удаление пользователя с ID 3
	4. Получение всех пользователей и пользователя с ID 2
	5. Поиск пользователей по username Karianne
	6. Выгрузку комментариев к последнему посту пользователя 1
	7. Вывод незавершенных задач пользователя 1`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.AppFrom(cmd.Context())
		if err != nil {
			return err
		}

		return app.RunScenario(cmd.Context(), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	// Команды работы с пользователями
	rootCmd.AddCommand(user.UserCmd)
	user.UserCmd.AddCommand(user.CreateCmd)
	user.UserCmd.AddCommand(user.UpdateCmd)
	user.UserCmd.AddCommand(user.DeleteCmd)
	user.UserCmd.AddCommand(user.ListCmd)
	user.UserCmd.AddCommand(user.GetCmd)
	user.UserCmd.AddCommand(user.FindCmd)

	// Посты и комментарии
	rootCmd.AddCommand(post.PostCmd)
	post.PostCmd.AddCommand(post.ListCmd)
	post.PostCmd.AddCommand(post.CommentsCmd)
	post.PostCmd.AddCommand(post.ExportCmd)

	// Задачи
	rootCmd.AddCommand(todo.TodoCmd)
	todo.TodoCmd.AddCommand(todo.ListCmd)
	todo.TodoCmd.AddCommand(todo.OpenCmd)
}
