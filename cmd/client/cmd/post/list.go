package post

import (
	"fmt"

	"github.com/spf13/cobra"

	"jsonapi/cmd/client/cmd/output"
	"jsonapi/cmd/client/cmd/types"
)

var listFormat string

var ListCmd = &cobra.Command{
	Use:   "list [userID]",
	Short: "Посты пользователя",
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

		posts, err := app.ListUserPosts(cmd.Context(), userID)
		if err != nil {
			return fmt.Errorf("ошибка получения постов: %w", err)
		}

		return output.PrintCollection(cmd.OutOrStdout(), posts, listFormat)
	},
}

var CommentsCmd = &cobra.Command{
	Use:   "comments [id]",
	Short: "Комментарии",
	Long: `Комментарии по ID поста. Если в конфигурации comments_scope=user,
ID считается идентификатором пользователя.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.AppFrom(cmd.Context())
		if err != nil {
			return err
		}

		id, err := types.ParseID(args[0])
		if err != nil {
			return err
		}

		comments, err := app.ListPostComments(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("ошибка получения комментариев: %w", err)
		}

		return output.PrintCollection(cmd.OutOrStdout(), comments, listFormat)
	},
}

func init() {
	output.AddFormatFlag(ListCmd, &listFormat)
	output.AddFormatFlag(CommentsCmd, &listFormat)
}
