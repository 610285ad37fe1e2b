package auth

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"itemdesk/cmd/client/cmd/prompt"
	"itemdesk/cmd/client/cmd/types"
	"itemdesk/internal/app/client"
	"itemdesk/internal/domain/user"
)

var loginEmail string

var LoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Войти в систему",
	Long: `Аутентификация на сервере Itemdesk.

После входа токен сессии и CSRF токен сохраняются локально.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		p := prompt.Stdio()

		email := loginEmail
		if email == "" {
			var err error
			if email, err = p.Ask("Email", ""); err != nil {
				return err
			}
		}
		password, err := p.Password("Пароль")
		if err != nil {
			return err
		}

		err = app.Login(cmd.Context(), user.LoginRequest{Email: email, Password: password})
		if err != nil {
			return prompt.Report(os.Stdout, err)
		}

		color.Green("Вход выполнен (пользователь #%d)", app.UserID())
		fmt.Println()
		return nil
	},
}

func init() {
	LoginCmd.Flags().StringVarP(&loginEmail, "email", "e", "", "email пользователя")
}
