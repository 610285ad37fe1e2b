package user

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"itemdesk/cmd/client/cmd/prompt"
	"itemdesk/cmd/client/cmd/types"
	"itemdesk/internal/app/client"
	"itemdesk/internal/app/client/page"
)

var (
	listSearch string
	listRole   string
	listFormat string
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Список пользователей",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)

		p := app.UsersPage()
		if err := p.Load(cmd.Context()); err != nil {
			return prompt.Report(os.Stdout, err)
		}
		f := page.Filter{Search: listSearch, Classes: map[string]string{"role": listRole}}

		if listFormat == "json" {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(p.View(f))
		}

		for _, g := range p.Group(f) {
			color.New(color.Bold).Printf("%s (%d)\n", g.Label, len(g.Records))
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			for _, u := range g.Records {
				me := ""
				if u.ID == app.UserID() {
					me = "(вы)"
				}
				fmt.Fprintf(w, "  #%d\t%s\t%s\t%s\t%s\n", u.ID, u.Name, u.Email, u.Role, me)
			}
			_ = w.Flush()
		}
		return nil
	},
}

func init() {
	ListCmd.Flags().StringVarP(&listSearch, "search", "s", "", "поиск по имени и email")
	ListCmd.Flags().StringVarP(&listRole, "role", "r", "", "фильтр по роли (admin, moderator, user)")
	ListCmd.Flags().StringVarP(&listFormat, "format", "f", "simple", "формат вывода (simple, json)")
}
