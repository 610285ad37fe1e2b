package auth

import (
	"errors"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"itemdesk/cmd/client/cmd/types"
	"itemdesk/internal/app/client"
)

var LogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Выйти из системы",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)

		err := app.Logout(cmd.Context())
		switch {
		case errors.Is(err, client.ErrNotAuthenticated):
			color.Yellow("Вход не выполнен")
			return nil
		case err != nil:
			color.Yellow("Сервер не подтвердил выход, локальная сессия удалена: %v", err)
			return nil
		}

		color.Green("Выход выполнен")
		return nil
	},
}
