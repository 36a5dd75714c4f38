package user

import (
	"github.com/spf13/cobra"

	"jsonapi/internal/domain/record"
)

// UserCmd - родительская команда для всех операций с пользователями
var UserCmd = &cobra.Command{
	Use:   "user",
	Short: "Управление пользователями",
	Long:  `Создание, обновление, удаление и просмотр пользователей удаленного каталога.`,
}

var (
	name     string
	username string
	email    string
	extra    []string
)

func addFieldFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&name, "name", "", "имя пользователя")
	cmd.Flags().StringVar(&username, "username", "", "username")
	cmd.Flags().StringVar(&email, "email", "", "email")
	cmd.Flags().StringArrayVar(&extra, "field", nil, "дополнительное поле key=value (можно повторять)")
}

// buildFields собирает тело запроса из флагов в порядке name, username, email, --field
func buildFields() (*record.Fields, error) {
	var pairs []string
	if name != "" {
		pairs = append(pairs, "name="+name)
	}
	if username != "" {
		pairs = append(pairs, "username="+username)
	}
	if email != "" {
		pairs = append(pairs, "email="+email)
	}
	pairs = append(pairs, extra...)

	return record.FieldsFromPairs(pairs)
}
