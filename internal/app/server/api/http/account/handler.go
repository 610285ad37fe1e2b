// Package account обслуживает регистрацию, вход и выход.
package account

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"itemdesk/internal/app/server/api/http/middleware/auth"
	"itemdesk/internal/domain/session"
	"itemdesk/internal/domain/user"
	"itemdesk/internal/domain/validation"
)

type Handler struct {
	service   user.Servicer
	session   session.Servicer
	log       *slog.Logger
	public    huma.Middlewares
	protected huma.Middlewares
}

// NewHandler принимает цепочку public для register и login и protected для logout.
func NewHandler(service user.Servicer, session session.Servicer, log *slog.Logger, public, protected huma.Middlewares) *Handler {
	return &Handler{
		service:   service,
		session:   session,
		log:       log.With("component", "account_handler"),
		public:    public,
		protected: protected,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.registerOp(), h.register)
	huma.Register(api, h.loginOp(), h.login)
	huma.Register(api, h.logoutOp(), h.logout)
}

func (h *Handler) register(ctx context.Context, input *registerInput) (*registerOutput, error) {
	u, err := h.service.Register(ctx, input.Body)
	if err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			return nil, verr
		}
		h.log.Error("registration failed", "error", err)
		return nil, huma.Error500InternalServerError("Server error.")
	}

	return &registerOutput{
		Body: registerResponse{Status: "Ok", UserID: u.ID},
	}, nil
}

func (h *Handler) login(ctx context.Context, input *loginInput) (*loginOutput, error) {
	if verr := validation.Struct(input.Body); verr != nil {
		return nil, verr
	}

	u, err := h.service.Authenticate(ctx, input.Body)
	if err != nil {
		if errors.Is(err, user.ErrInvalidAuth) {
			return nil, huma.Error401Unauthorized("These credentials do not match our records.")
		}
		h.log.Error("authentication failed", "error", err)
		return nil, huma.Error500InternalServerError("Server error.")
	}

	token, err := h.session.Create(ctx, u.ID)
	if err != nil {
		h.log.Error("failed to create session", "user_id", u.ID, "error", err)
		return nil, huma.Error500InternalServerError("Server error.")
	}

	h.log.Info("user logged in", "user_id", u.ID)
	return &loginOutput{
		Body: loginResponse{
			Status:    "Ok",
			Token:     token,
			CSRFToken: h.session.CSRFToken(token),
			UserID:    u.ID,
		},
	}, nil
}

func (h *Handler) logout(ctx context.Context, _ *struct{}) (*logoutOutput, error) {
	token, ok := auth.GetToken(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthenticated.")
	}

	if err := h.session.Revoke(ctx, token); err != nil {
		h.log.Error("failed to revoke session", "error", err)
		return nil, huma.Error500InternalServerError("Server error.")
	}

	return &logoutOutput{Body: logoutResponse{Status: "Ok"}}, nil
}
