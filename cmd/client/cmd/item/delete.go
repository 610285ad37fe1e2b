package item

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"itemdesk/cmd/client/cmd/prompt"
	"itemdesk/cmd/client/cmd/types"
	"itemdesk/internal/app/client"
	"itemdesk/internal/app/client/editor"
)

var deleteYes bool

var DeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Удалить элемент",
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

		title := e.Record().Title
		err = e.Delete(cmd.Context(), func() bool {
			return deleteYes || prompt.Stdio().Confirm(fmt.Sprintf("Удалить элемент %q?", title))
		})
		if errors.Is(err, editor.ErrNotConfirmed) {
			color.Yellow("Удаление отменено")
			return nil
		}
		if err != nil {
			return prompt.Report(os.Stdout, err)
		}

		color.Green("Элемент #%d удален", id)
		return nil
	},
}

func init() {
	DeleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "не спрашивать подтверждение")
}
