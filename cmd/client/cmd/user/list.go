package user

import (
	"fmt"

	"github.com/spf13/cobra"

	"jsonapi/cmd/client/cmd/output"
	"jsonapi/cmd/client/cmd/types"
)

var listFormat string

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Список пользователей",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.AppFrom(cmd.Context())
		if err != nil {
			return err
		}

		users, err := app.ListUsers(cmd.Context())
		if err != nil {
			return fmt.Errorf("ошибка получения списка пользователей: %w", err)
		}

		return output.PrintCollection(cmd.OutOrStdout(), users, listFormat)
	},
}

var GetCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Просмотреть пользователя",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.AppFrom(cmd.Context())
		if err != nil {
			return err
		}

		id, err := types.ParseID(args[0])
		if err != nil {
			return err
		}

		user, err := app.GetUser(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("ошибка получения пользователя: %w", err)
		}

		return output.PrintRecord(cmd.OutOrStdout(), user, listFormat)
	},
}

var FindCmd = &cobra.Command{
	Use:     "find [username]",
	Short:   "Найти пользователей по username",
	Example: `  jsonapi user find Karianne`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.AppFrom(cmd.Context())
		if err != nil {
			return err
		}

		users, err := app.FindUsersByUsername(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("ошибка поиска пользователей: %w", err)
		}

		return output.PrintCollection(cmd.OutOrStdout(), users, listFormat)
	},
}

func init() {
	output.AddFormatFlag(ListCmd, &listFormat)
	output.AddFormatFlag(GetCmd, &listFormat)
	output.AddFormatFlag(FindCmd, &listFormat)
}
