package item

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"itemdesk/internal/app/client"
	"itemdesk/internal/app/client/gateway"
)

// ItemCmd - родительская команда для всех операций с элементами
var ItemCmd = &cobra.Command{
	Use:   "item",
	Short: "Управление элементами панели",
	Long:  `Просмотр, создание, изменение, закрепление, удаление и переупорядочивание элементов.`,
}

// load заполняет страницу с сервера. При недоступном сервере и с offline
// страница заполняется из последнего снимка.
func load(ctx context.Context, app *client.App, offline bool) (*client.ItemsPage, error) {
	p := app.ItemsPage()
	if offline {
		return p, p.LoadCached()
	}

	err := p.Load(ctx)
	if err == nil || gateway.Classify(err) != gateway.OutcomeFatal {
		return p, err
	}
	if cacheErr := p.LoadCached(); cacheErr != nil {
		return p, err
	}
	color.Yellow("Сервер недоступен, показан сохраненный список: %v", err)
	return p, nil
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("некорректный ID: %q", arg)
	}
	return id, nil
}
