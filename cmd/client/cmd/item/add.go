package item

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"itemdesk/cmd/client/cmd/prompt"
	"itemdesk/cmd/client/cmd/types"
	"itemdesk/internal/app/client"
	"itemdesk/internal/domain/item"
)

var (
	addTitle       string
	addDescription string
	addType        string
	addColor       string
)

var AddCmd = &cobra.Command{
	Use:   "add",
	Short: "Создать элемент",
	Long: `Создание элемента панели.

Незаданные флагами поля запрашиваются интерактивно.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		pr := prompt.Stdio()

		p := app.ItemsPage()
		if err := p.Load(cmd.Context()); err != nil {
			return prompt.Report(os.Stdout, err)
		}

		form := p.Form()
		form.Open()
		defaults := form.Buffer()

		var err error
		title := addTitle
		if title == "" {
			if title, err = pr.Ask("Заголовок", ""); err != nil {
				return err
			}
		}
		description := addDescription
		if description == "" {
			if description, err = pr.Ask("Описание", ""); err != nil {
				return err
			}
		}
		kind := addType
		if kind == "" {
			if kind, err = pr.Ask("Вид (note, task, link, reminder)", string(defaults.Type)); err != nil {
				return err
			}
		}
		clr := addColor
		if clr == "" {
			if clr, err = pr.Ask("Цвет (blue, green, red, yellow, purple, orange)", string(defaults.Color)); err != nil {
				return err
			}
		}

		form.Set(func(f *item.Fields) {
			f.Title = title
			f.Description = description
			f.Type = item.Type(kind)
			f.Color = item.Color(clr)
		})

		created, err := form.Submit(cmd.Context())
		if err != nil {
			return prompt.Report(os.Stdout, err)
		}

		color.Green("Элемент #%d создан", created.ID)
		return nil
	},
}

func init() {
	AddCmd.Flags().StringVar(&addTitle, "title", "", "заголовок")
	AddCmd.Flags().StringVar(&addDescription, "description", "", "описание")
	AddCmd.Flags().StringVar(&addType, "type", "", "вид")
	AddCmd.Flags().StringVar(&addColor, "color", "", "цвет")
}
