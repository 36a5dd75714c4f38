package post

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"jsonapi/cmd/client/cmd/types"
)

var ExportCmd = &cobra.Command{
	Use:   "export [userID]",
	Short: "Выгрузить комментарии к последнему посту пользователя",
	Long: `Находит пост пользователя с наибольшим id и сохраняет комментарии к нему
в JSON файл (export_dir/export_file). Существующий файл перезаписывается.
Ошибка записи файла выводится в лог и не прерывает работу.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.AppFrom(cmd.Context())
		if err != nil {
			return err
		}

		userID, err := types.ParseID(args[0])
		if err != nil {
			return err
		}

		path, err := app.ExportLastPostComments(cmd.Context(), userID)
		if err != nil {
			return fmt.Errorf("ошибка выгрузки комментариев: %w", err)
		}

		if path == "" {
			fmt.Fprintln(cmd.OutOrStdout(), "Файл не записан")
			return nil
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s Комментарии сохранены: %s\n", color.GreenString("✓"), path)
		return nil
	},
}
