package auth

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"itemdesk/cmd/client/cmd/prompt"
	"itemdesk/cmd/client/cmd/types"
	"itemdesk/internal/app/client"
	"itemdesk/internal/domain/user"
	"itemdesk/internal/domain/validation"
)

var RegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Зарегистрировать нового пользователя",
	Long: `Регистрация учетной записи на сервере Itemdesk.

Первый зарегистрированный пользователь получает роль администратора.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		p := prompt.Stdio()

		var req user.RegisterRequest
		var err error
		if req.Name, err = p.Ask("Имя", ""); err != nil {
			return err
		}
		if req.Email, err = p.Ask("Email", ""); err != nil {
			return err
		}
		if req.Password, err = p.Password("Пароль"); err != nil {
			return err
		}
		if req.PasswordConfirmation, err = p.Password("Повторите пароль"); err != nil {
			return err
		}

		if verr := validation.Struct(req); verr != nil {
			return prompt.Report(os.Stdout, verr)
		}

		id, err := app.Register(cmd.Context(), req)
		if err != nil {
			return prompt.Report(os.Stdout, err)
		}

		color.Green("Регистрация завершена (пользователь #%d)", id)
		color.White("Теперь можно войти: itemdesk auth login")
		return nil
	},
}
