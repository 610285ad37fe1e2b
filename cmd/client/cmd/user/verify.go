package user

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"itemdesk/cmd/client/cmd/prompt"
	"itemdesk/cmd/client/cmd/types"
	"itemdesk/internal/app/client"
)

var VerifyCmd = &cobra.Command{
	Use:   "verify ID",
	Short: "Подтвердить пользователя или снять подтверждение",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		p := app.UsersPage()
		if err := p.Load(cmd.Context()); err != nil {
			return prompt.Report(os.Stdout, err)
		}
		e, err := p.Editor(id)
		if err != nil {
			return err
		}

		if err := e.Toggle(cmd.Context()); err != nil {
			return prompt.Report(os.Stdout, err)
		}

		if e.Record().IsVerified {
			color.Green("Пользователь #%d подтвержден", id)
		} else {
			color.Yellow("С пользователя #%d снято подтверждение", id)
		}
		return nil
	},
}
