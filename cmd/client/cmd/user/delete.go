package user

import (
	"fmt"

	"github.com/spf13/cobra"

	"jsonapi/cmd/client/cmd/types"
)

var DeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Удалить пользователя",
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

		body, err := app.DeleteUser(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("ошибка удаления пользователя: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), body)
		return nil
	},
}
