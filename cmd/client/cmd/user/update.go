package user

import (
	"fmt"

	"github.com/spf13/cobra"

	"jsonapi/cmd/client/cmd/types"
)

var UpdateCmd = &cobra.Command{
	Use:     "update [id]",
	Short:   "Обновить пользователя",
	Example: `  jsonapi user update 4 --name "Updated User" --email updated@example.com`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.AppFrom(cmd.Context())
		if err != nil {
			return err
		}

		id, err := types.ParseID(args[0])
		if err != nil {
			return err
		}

		fields, err := buildFields()
		if err != nil {
			return err
		}

		body, err := app.UpdateUser(cmd.Context(), id, fields)
		if err != nil {
			return fmt.Errorf("ошибка обновления пользователя: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), body)
		return nil
	},
}

func init() {
	addFieldFlags(UpdateCmd)
}
