//POST   /auth/register                  # Регистрация (публичный)
//POST   /auth/login                     # Вход (публичный)
//POST   /auth/logout                    # Выход (auth)
//GET    /api/items                      # Список элементов (auth)
//POST   /api/items                      # Создать элемент (auth)
//PUT    /api/items/{id}                 # Обновить элемент (auth)
//DELETE /api/items/{id}                 # Удалить элемент (auth)
//PATCH  /api/items/{id}/toggle-pin      # Закрепить/открепить (auth)
//PATCH  /api/items/reorder              # Переупорядочить (auth)
//GET    /api/users                      # Список пользователей (auth)
//POST   /api/users                      # Создать пользователя (admin)
//PUT    /api/users/{id}                 # Обновить пользователя (admin)
//DELETE /api/users/{id}                 # Удалить пользователя (admin)
//PATCH  /api/users/{id}/toggle-verified # Подтвердить/снять подтверждение (admin)
//GET    /api/v1/health                  # Состояние сервиса
//GET    /metrics                        # Метрики Prometheus

package api

import (
	"path"
	"reflect"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/exp/slog"

	"itemdesk/internal/app/server/api/http/account"
	healthAPI "itemdesk/internal/app/server/api/http/health"
	itemAPI "itemdesk/internal/app/server/api/http/item"
	"itemdesk/internal/app/server/api/http/middleware"
	"itemdesk/internal/app/server/api/http/middleware/auth"
	"itemdesk/internal/app/server/api/http/middleware/csrf"
	"itemdesk/internal/app/server/api/http/middleware/logger"
	"itemdesk/internal/app/server/api/http/middleware/metrics"
	"itemdesk/internal/app/server/api/http/middleware/ratelimit"
	userAPI "itemdesk/internal/app/server/api/http/user"
	"itemdesk/internal/app/server/config"
	"itemdesk/internal/domain/item"
	"itemdesk/internal/domain/session"
	"itemdesk/internal/domain/user"
	"itemdesk/internal/infrastructure/storage/postgres"
)

// Services содержит доменные сервисы, которые обслуживает API.
type Services struct {
	Users    user.Servicer
	Sessions session.Servicer
	Items    item.Servicer
	// DB проверяется в health check, может быть nil.
	DB healthAPI.Pinger
}

// NewServices собирает сервисы поверх PostgreSQL.
func NewServices(storage *postgres.Storage, cfg *config.Config, log *slog.Logger) Services {
	return Services{
		Users: user.NewService(
			postgres.NewUserRepository(storage, log),
			passwordValidator(cfg),
			log,
		),
		Sessions: session.NewService(
			postgres.NewSessionRepository(storage, log),
			cfg.Auth.Secret,
			cfg.Auth.SessionTTL,
			log,
		),
		Items: item.NewService(postgres.NewItemRepository(storage, log), log),
		DB:    storage,
	}
}

// passwordValidator выбирает правила паролей по конфигурации.
func passwordValidator(cfg *config.Config) *user.PasswordValidator {
	if cfg.Auth.StrictPasswords {
		return user.NewStrictPasswordValidator()
	}
	return user.NewPasswordValidator()
}

type Handlers struct {
	Health  *healthAPI.Handler
	Account *account.Handler
	User    *userAPI.Handler
	Item    *itemAPI.Handler
}

// New создает *chi.Mux со всеми операциями и /metrics.
func New(cfg *config.Config, svc Services, reg *prometheus.Registry, log *slog.Logger) *chi.Mux {
	useEnvelopeErrors()

	mux := chi.NewMux()

	hcfg := huma.DefaultConfig("Itemdesk API", "1.0.0")
	hcfg.Components.Schemas = huma.NewMapRegistry("#/components/schemas/", schemaNamer)
	hcfg.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer"},
	}
	hcfg.CreateHooks = nil

	API := humachi.New(mux, hcfg)

	h := handlers(API, cfg, svc, metrics.New(reg), log)
	h.Health.SetupRoutes(API)
	h.Account.SetupRoutes(API)
	h.User.SetupRoutes(API)
	h.Item.SetupRoutes(API)

	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	return mux
}

func handlers(API huma.API, cfg *config.Config, svc Services, m *metrics.Metrics, log *slog.Logger) *Handlers {
	loggerMW := logger.New(log)
	authMW := auth.New(API, svc.Sessions, log)
	csrfMW := csrf.New(API, svc.Sessions, log)
	limiter := ratelimit.New(API, cfg.Auth.RatePerMin, log)

	mws := middleware.NewContainer()

	healthHandler := healthAPI.NewHandler(svc.DB, log,
		mws.Add(loggerMW.Middleware(), m.Middleware()).GetAllAndClear())

	public := mws.Add(loggerMW.Middleware(), m.Middleware(), limiter.Middleware()).GetAllAndClear()
	protected := mws.Add(loggerMW.Middleware(), m.Middleware(), authMW.Middleware(), csrfMW.Middleware()).GetAllAndClear()

	accountHandler := account.NewHandler(svc.Users, svc.Sessions, log, public, protected)
	userHandler := userAPI.NewHandler(svc.Users, log, protected)
	itemHandler := itemAPI.NewHandler(svc.Items, log, protected)

	return &Handlers{
		Health:  healthHandler,
		Account: accountHandler,
		User:    userHandler,
		Item:    itemHandler,
	}
}

// schemaNamer добавляет к имени схемы имя пакета: item.Fields и
// user.Fields становятся ItemFields и UserFields.
func schemaNamer(t reflect.Type, hint string) string {
	name := huma.DefaultSchemaNamer(t, hint)

	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	pkg := path.Base(t.PkgPath())
	if t.PkgPath() == "" || pkg == "" {
		return name
	}
	prefix := strings.ToUpper(pkg[:1]) + pkg[1:]
	if strings.HasPrefix(name, prefix) {
		return name
	}
	return prefix + name
}
