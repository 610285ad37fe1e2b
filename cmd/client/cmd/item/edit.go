package item

import (
	"errors"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"itemdesk/cmd/client/cmd/prompt"
	"itemdesk/cmd/client/cmd/types"
	"itemdesk/internal/app/client"
	"itemdesk/internal/domain/item"
)

var (
	editTitle       string
	editDescription string
	editType        string
	editColor       string
)

var EditCmd = &cobra.Command{
	Use:   "edit ID",
	Short: "Изменить элемент",
	Long: `Изменение полей элемента. Меняются только поля, заданные флагами;
остальные отправляются как есть.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		if !flags.Changed("title") && !flags.Changed("description") && !flags.Changed("type") && !flags.Changed("color") {
			return errors.New("не задано ни одного поля для изменения")
		}

		p, err := load(cmd.Context(), app, false)
		if err != nil {
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

		color.Green("Элемент #%d сохранен", id)
		return nil
	},
}

type fieldsSetter interface {
	Set(fn func(*item.Fields)) error
}

// applyEdit переносит в буфер редактора поля, заданные флагами.
func applyEdit(e fieldsSetter, changed func(string) bool) error {
	return e.Set(func(f *item.Fields) {
		if changed("title") {
			f.Title = editTitle
		}
		if changed("description") {
			f.Description = editDescription
		}
		if changed("type") {
			f.Type = item.Type(editType)
		}
		if changed("color") {
			f.Color = item.Color(editColor)
		}
	})
}

func init() {
	EditCmd.Flags().StringVar(&editTitle, "title", "", "заголовок")
	EditCmd.Flags().StringVar(&editDescription, "description", "", "описание")
	EditCmd.Flags().StringVar(&editType, "type", "", "вид")
	EditCmd.Flags().StringVar(&editColor, "color", "", "цвет")
}
