package user

import (
	"fmt"

	"github.com/spf13/cobra"

	"jsonapi/cmd/client/cmd/types"
)

var CreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Создать пользователя",
	Long: `Отправляет POST на ресурс users. Тело ответа печатается как есть,
даже если сервер вернул статус, отличный от 201.`,
	Example: `  jsonapi user create --name "New User" --username newuser --email newuser@example.com`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.AppFrom(cmd.Context())
		if err != nil {
			return err
		}

		fields, err := buildFields()
		if err != nil {
			return err
		}

		body, err := app.CreateUser(cmd.Context(), fields)
		if err != nil {
			return fmt.Errorf("ошибка создания пользователя: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), body)
		return nil
	},
}

func init() {
	addFieldFlags(CreateCmd)
}
