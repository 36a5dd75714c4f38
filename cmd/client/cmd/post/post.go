package post

import (
	"github.com/spf13/cobra"
)

// PostCmd - родительская команда для постов и комментариев
var PostCmd = &cobra.Command{
	Use:   "post",
	Short: "Посты и комментарии",
	Long:  `Просмотр постов пользователя, комментариев и выгрузка комментариев к последнему посту в файл.`,
}
