package item

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"itemdesk/cmd/client/cmd/prompt"
	"itemdesk/cmd/client/cmd/types"
	"itemdesk/internal/app/client"
)

var ReorderCmd = &cobra.Command{
	Use:   "reorder ID [ID...]",
	Short: "Задать порядок элементов",
	Long: `Ставит перечисленные элементы в начало списка в указанном порядке.
Неперечисленные элементы следуют за ними в прежнем порядке.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)

		ids := make([]int, len(args))
		for i, arg := range args {
			id, err := parseID(arg)
			if err != nil {
				return err
			}
			ids[i] = id
		}

		p, err := load(cmd.Context(), app, false)
		if err != nil {
			return prompt.Report(os.Stdout, err)
		}
		if err := p.Reorder(cmd.Context(), ids); err != nil {
			return prompt.Report(os.Stdout, err)
		}

		color.Green("Порядок сохранен")
		printSimple(os.Stdout, p.Records())
		return nil
	},
}
