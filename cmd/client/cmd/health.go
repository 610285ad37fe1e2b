package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"itemdesk/cmd/client/cmd/types"
	"itemdesk/internal/app/client"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Проверить доступность сервера",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)

		if err := app.Health(cmd.Context()); err != nil {
			return fmt.Errorf("сервер недоступен: %w", err)
		}
		color.Green("Сервер доступен")
		return nil
	},
}
