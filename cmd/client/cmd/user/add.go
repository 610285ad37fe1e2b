package user

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"itemdesk/cmd/client/cmd/prompt"
	"itemdesk/cmd/client/cmd/types"
	"itemdesk/internal/app/client"
	"itemdesk/internal/domain/user"
)

var addRole string

var AddCmd = &cobra.Command{
	Use:   "add",
	Short: "Создать пользователя",
	Long: `Создание пользователя администратором. Несовпадающие пароли
отклоняются до обращения к серверу.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		pr := prompt.Stdio()

		p := app.UsersPage()
		if err := p.Load(cmd.Context()); err != nil {
			return prompt.Report(os.Stdout, err)
		}
		form := p.Form()
		form.Open()

		var req user.CreateRequest
		var err error
		if req.Name, err = pr.Ask("Имя", ""); err != nil {
			return err
		}
		if req.Email, err = pr.Ask("Email", ""); err != nil {
			return err
		}
		if req.Password, err = pr.Password("Пароль"); err != nil {
			return err
		}
		if req.PasswordConfirmation, err = pr.Password("Повторите пароль"); err != nil {
			return err
		}

		form.Set(func(c *user.CreateRequest) {
			c.Name = req.Name
			c.Email = req.Email
			c.Password = req.Password
			c.PasswordConfirmation = req.PasswordConfirmation
			if addRole != "" {
				c.Role = user.Role(addRole)
			}
		})

		created, err := form.Submit(cmd.Context())
		if err != nil {
			return prompt.Report(os.Stdout, err)
		}

		color.Green("Пользователь #%d создан", created.ID)
		return nil
	},
}

func init() {
	AddCmd.Flags().StringVarP(&addRole, "role", "r", "", "роль (admin, moderator, user)")
}
