package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"golang.org/x/exp/slog"

	"itemdesk/internal/app/client/cache"
	"itemdesk/internal/app/client/config"
	"itemdesk/internal/app/client/gateway"
	"itemdesk/internal/app/client/page"
	"itemdesk/internal/domain/item"
	"itemdesk/internal/domain/user"
)

var ErrNotAuthenticated = errors.New("not authenticated")

type (
	ItemsPage = page.Page[item.Item, item.Fields, item.Fields]
	UsersPage = page.Page[user.User, user.Fields, user.CreateRequest]
)

type App struct {
	config   *config.Config
	log      *slog.Logger
	client   *gateway.Client
	auth     *gateway.Auth
	items    *gateway.Items
	users    *gateway.Users
	cache    cache.Snapshot
	strategy page.Strategy
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	strategy, err := page.ParseStrategy(cfg.RefreshStrategy)
	if err != nil {
		return nil, err
	}
	if err := cfg.EnsureDir(); err != nil {
		return nil, fmt.Errorf("ошибка создания директории конфигурации: %w", err)
	}

	var snap cache.Snapshot
	sqlite, err := cache.NewSQLite(cfg.CachePath)
	if err != nil {
		log.Warn("Не удалось открыть кэш SQLite, используем память", "error", err)
		snap = cache.NewMemory()
	} else {
		snap = sqlite
	}

	httpCl := gateway.New(cfg.BaseURL(), cfg.RequestTimeout, log)
	app := &App{
		config:   cfg,
		log:      log.With("component", "app"),
		client:   httpCl,
		auth:     gateway.NewAuth(httpCl),
		items:    gateway.NewItems(httpCl),
		users:    gateway.NewUsers(httpCl),
		cache:    snap,
		strategy: strategy,
	}

	creds, err := app.loadSession()
	switch {
	case err == nil:
		httpCl.SetCredentials(creds)
		app.log.Debug("Сессия загружена из файла", "user_id", creds.UserID)
	case !errors.Is(err, os.ErrNotExist):
		app.log.Warn("Не удалось прочитать файл сессии", "error", err)
	}

	return app, nil
}

func (a *App) Close() error {
	return a.cache.Close()
}

func (a *App) IsAuthenticated() bool {
	return a.client.Credentials().Token != ""
}

// UserID возвращает ID пользователя текущей сессии.
func (a *App) UserID() int {
	return a.client.Credentials().UserID
}

func (a *App) Health(ctx context.Context) error {
	return a.auth.Health(ctx)
}

func (a *App) Register(ctx context.Context, req user.RegisterRequest) (int, error) {
	return a.auth.Register(ctx, req)
}

// Login открывает сессию и сохраняет ее в файл.
func (a *App) Login(ctx context.Context, req user.LoginRequest) error {
	creds, err := a.auth.Login(ctx, req)
	if err != nil {
		return err
	}
	if err := a.saveSession(creds); err != nil {
		return fmt.Errorf("ошибка сохранения сессии: %w", err)
	}
	a.log.Info("Вход выполнен", "user_id", creds.UserID)
	return nil
}

// Logout закрывает сессию. Файл сессии и сохраненные списки удаляются,
// даже если сервер недоступен.
func (a *App) Logout(ctx context.Context) error {
	if !a.IsAuthenticated() {
		return ErrNotAuthenticated
	}
	err := a.auth.Logout(ctx)
	if rmErr := os.Remove(a.config.SessionPath); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
		a.log.Warn("Не удалось удалить файл сессии", "error", rmErr)
	}
	if pErr := a.cache.Purge(); pErr != nil {
		a.log.Warn("Не удалось очистить кэш списков", "error", pErr)
	}
	return err
}

// ItemsPage собирает страницу элементов панели.
func (a *App) ItemsPage() *ItemsPage {
	return page.New[item.Item, item.Fields, item.Fields](a.items, page.Options[item.Fields]{
		Kind:     a.snapshotKey("items"),
		Strategy: a.strategy,
		Defaults: item.Defaults(),
		Precheck: item.ValidateFields,
		Labels:   [2]string{"Закрепленные", "Остальные"},
		Cache:    a.cache,
	}, a.log)
}

// UsersPage собирает страницу управления пользователями.
func (a *App) UsersPage() *UsersPage {
	return page.New[user.User, user.Fields, user.CreateRequest](a.users, page.Options[user.CreateRequest]{
		Kind:     a.snapshotKey("users"),
		Strategy: a.strategy,
		Defaults: user.Defaults(),
		Precheck: user.ValidateCreateRequest,
		Labels:   [2]string{"Подтвержденные", "Ожидают подтверждения"},
		Cache:    a.cache,
	}, a.log)
}

// snapshotKey привязывает снимок списка к пользователю сессии.
func (a *App) snapshotKey(kind string) string {
	return fmt.Sprintf("%d/%s", a.UserID(), kind)
}

func (a *App) loadSession() (gateway.Credentials, error) {
	data, err := os.ReadFile(a.config.SessionPath)
	if err != nil {
		return gateway.Credentials{}, err
	}
	var creds gateway.Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return gateway.Credentials{}, err
	}
	return creds, nil
}

func (a *App) saveSession(creds gateway.Credentials) error {
	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(a.config.SessionPath, data, 0o600)
}
