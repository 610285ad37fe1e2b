package item

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"itemdesk/cmd/client/cmd/prompt"
	"itemdesk/cmd/client/cmd/types"
	"itemdesk/internal/app/client"
)

var PinCmd = &cobra.Command{
	Use:   "pin ID",
	Short: "Закрепить или открепить элемент",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		p, err := load(cmd.Context(), app, false)
		if err != nil {
			return prompt.Report(os.Stdout, err)
		}
		e, err := p.Editor(id)
		if err != nil {
			return err
		}

		if err := e.Toggle(cmd.Context()); err != nil {
			return prompt.Report(os.Stdout, err)
		}

		if e.Record().IsPinned {
			color.Green("Элемент #%d закреплен", id)
		} else {
			color.Green("Элемент #%d откреплен", id)
		}
		return nil
	},
}
