package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"

	"itemdesk/cmd/client/cmd/auth"
	"itemdesk/cmd/client/cmd/item"
	"itemdesk/cmd/client/cmd/types"
	"itemdesk/cmd/client/cmd/user"
	"itemdesk/internal/app/client"
	"itemdesk/internal/app/client/config"
	"itemdesk/internal/utils/logger"
)

var (
	cfgFile   string
	debug     bool
	serverURL string
	app       *client.App
)

var rootCmd = &cobra.Command{
	Use:   "itemdesk",
	Short: "Itemdesk: клиент панели элементов",
	Long: `Клиент для работы с элементами панели и пользователями.

Списки загружаются с сервера, изменения отправляются по одному и
применяются к списку только после подтверждения сервером.`,
	PersistentPreRunE:  setupApp,
	PersistentPostRunE: closeApp,
	SilenceUsage:       true,
	SilenceErrors:      true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Ошибка: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}
	if serverURL != "" {
		cfg.ServerAddress = serverURL
	}

	log := logger.Discard()
	if debug {
		log = logger.New(cfg.Env)
	}
	log = log.With(slog.String("server", cfg.BaseURL()))

	app, err = client.New(cfg, log)
	if err != nil {
		return fmt.Errorf("ошибка инициализации приложения: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(context.WithValue(ctx, types.ClientAppKey, app))
	return nil
}

func closeApp(_ *cobra.Command, _ []string) error {
	if app == nil {
		return nil
	}
	return app.Close()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "конфигурационный файл")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "включить отладочный режим")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "адрес сервера Itemdesk")

	auth.AuthCmd.AddCommand(auth.LoginCmd, auth.RegisterCmd, auth.LogoutCmd)
	item.ItemCmd.AddCommand(item.ListCmd, item.AddCmd, item.EditCmd, item.DeleteCmd, item.PinCmd, item.ReorderCmd)
	user.UserCmd.AddCommand(user.ListCmd, user.AddCmd, user.EditCmd, user.DeleteCmd, user.VerifyCmd)
	rootCmd.AddCommand(auth.AuthCmd, item.ItemCmd, user.UserCmd, healthCmd)
}
