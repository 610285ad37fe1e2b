package item

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"itemdesk/cmd/client/cmd/prompt"
	"itemdesk/cmd/client/cmd/types"
	"itemdesk/internal/app/client"
	"itemdesk/internal/app/client/page"
	"itemdesk/internal/domain/item"
)

var (
	listSearch  string
	listType    string
	listColor   string
	listFormat  string
	listGroup   bool
	listOffline bool
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Список элементов",
	Long: `Просмотр элементов панели с поиском и фильтрами.

Поиск и фильтры применяются к загруженному списку без запросов к серверу.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)

		p, err := load(cmd.Context(), app, listOffline)
		if err != nil {
			return prompt.Report(os.Stdout, err)
		}

		f := page.Filter{
			Search:  listSearch,
			Classes: map[string]string{"type": listType, "color": listColor},
		}

		if listGroup && listFormat == "simple" {
			for _, g := range p.Group(f) {
				color.New(color.Bold).Printf("%s (%d)\n", g.Label, len(g.Records))
				printSimple(os.Stdout, g.Records)
			}
			return nil
		}

		records := p.View(f)
		switch listFormat {
		case "json":
			return printJSON(os.Stdout, records)
		case "table":
			return printTable(os.Stdout, records)
		case "csv":
			return printCSV(os.Stdout, records)
		default:
			printSimple(os.Stdout, records)
			return nil
		}
	},
}

func printSimple(w io.Writer, records []item.Item) {
	if len(records) == 0 {
		fmt.Fprintln(w, "  Элементы не найдены")
		return
	}
	for _, it := range records {
		pin := " "
		if it.IsPinned {
			pin = "*"
		}
		fmt.Fprintf(w, "%s #%d [%s, %s] %s\n", pin, it.ID, it.Type.DisplayName(), it.Color, it.Title)
		if it.Description != "" {
			fmt.Fprintf(w, "     %s\n", truncate(it.Description, 72))
		}
	}
	fmt.Fprintln(w)
}

func printTable(w io.Writer, records []item.Item) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID\tПоз.\tВид\tЦвет\tЗакреплен\tЗаголовок\tОбновлен\t\n")
	for _, it := range records {
		pinned := "нет"
		if it.IsPinned {
			pinned = "да"
		}
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%s\t%s\t%s\t\n",
			it.ID,
			it.Position,
			it.Type.DisplayName(),
			it.Color,
			pinned,
			truncate(it.Title, 40),
			it.UpdatedAt.Format("2006-01-02 15:04"),
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(w, "\nВсего: %d\n", len(records))
	return nil
}

func printJSON(w io.Writer, records []item.Item) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

func printCSV(w io.Writer, records []item.Item) error {
	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"id", "position", "type", "color", "is_pinned", "title", "description"})
	for _, it := range records {
		_ = cw.Write([]string{
			strconv.Itoa(it.ID),
			strconv.Itoa(it.Position),
			string(it.Type),
			string(it.Color),
			strconv.FormatBool(it.IsPinned),
			it.Title,
			it.Description,
		})
	}
	cw.Flush()
	return cw.Error()
}

func truncate(s string, length int) string {
	r := []rune(s)
	if len(r) <= length {
		return s
	}
	return string(r[:length-3]) + "..."
}

func init() {
	ListCmd.Flags().StringVarP(&listSearch, "search", "s", "", "поиск по заголовку и описанию")
	ListCmd.Flags().StringVarP(&listType, "type", "t", "", "фильтр по виду (note, task, link, reminder)")
	ListCmd.Flags().StringVarP(&listColor, "color", "c", "", "фильтр по цвету")
	ListCmd.Flags().StringVarP(&listFormat, "format", "f", "simple", "формат вывода (simple, table, json, csv)")
	ListCmd.Flags().BoolVarP(&listGroup, "group", "g", false, "разделить на закрепленные и остальные")
	ListCmd.Flags().BoolVar(&listOffline, "offline", false, "показать сохраненный список без запроса к серверу")
}
