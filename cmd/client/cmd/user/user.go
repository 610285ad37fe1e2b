package user

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// UserCmd объединяет команды администратора над пользователями.
var UserCmd = &cobra.Command{
	Use:   "user",
	Short: "Управление пользователями",
	Long:  `Просмотр, создание, изменение, подтверждение и удаление пользователей.`,
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("некорректный ID: %q", arg)
	}
	return id, nil
}
