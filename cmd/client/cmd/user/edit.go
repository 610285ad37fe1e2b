package user

import (
	"errors"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"itemdesk/cmd/client/cmd/prompt"
	"itemdesk/cmd/client/cmd/types"
	"itemdesk/internal/app/client"
	"itemdesk/internal/domain/user"
)

var (
	editName  string
	editEmail string
	editRole  string
)

var EditCmd = &cobra.Command{
	Use:   "edit ID",
	Short: "Изменить пользователя",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		if !flags.Changed("name") && !flags.Changed("email") && !flags.Changed("role") {
			return errors.New("не задано ни одного поля для изменения")
		}

		p := app.UsersPage()
		if err := p.Load(cmd.Context()); err != nil {
			return prompt.Report(os.Stdout, err)
		}
		e, err := p.Editor(id)
		if err != nil {
			return err
		}

		if err := e.BeginEdit(); err != nil {
			return err
		}
		if err := applyEdit(e, flags.Changed); err != nil {
			return err
		}

		if err := e.Save(cmd.Context()); err != nil {
			return prompt.Report(os.Stdout, err)
		}

		color.Green("Пользователь #%d сохранен", id)
		return nil
	},
}

type fieldsSetter interface {
	Set(fn func(*user.Fields)) error
}

func applyEdit(e fieldsSetter, changed func(string) bool) error {
	return e.Set(func(f *user.Fields) {
		if changed("name") {
			f.Name = editName
		}
		if changed("email") {
			f.Email = editEmail
		}
		if changed("role") {
			f.Role = user.Role(editRole)
		}
	})
}

func init() {
	EditCmd.Flags().StringVar(&editName, "name", "", "имя")
	EditCmd.Flags().StringVar(&editEmail, "email", "", "email")
	EditCmd.Flags().StringVar(&editRole, "role", "", "роль")
}
