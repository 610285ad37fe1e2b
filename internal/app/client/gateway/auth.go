package gateway

import (
	"context"
	"net/http"

	"itemdesk/internal/domain/user"
)

type Auth struct {
	client *Client
}

func NewAuth(client *Client) *Auth {
	return &Auth{client: client}
}

// Register создает учетную запись и возвращает ее ID.
func (a *Auth) Register(ctx context.Context, req user.RegisterRequest) (int, error) {
	var resp struct {
		UserID int `json:"user_id"`
	}
	if err := a.client.do(ctx, http.MethodPost, "/auth/register", req, &resp); err != nil {
		return 0, err
	}
	return resp.UserID, nil
}

// Login открывает сессию и запоминает ее в клиенте.
func (a *Auth) Login(ctx context.Context, req user.LoginRequest) (Credentials, error) {
	var creds Credentials
	if err := a.client.do(ctx, http.MethodPost, "/auth/login", req, &creds); err != nil {
		return Credentials{}, err
	}
	a.client.SetCredentials(creds)
	return creds, nil
}

// Logout закрывает сессию на сервере. Локальные данные сессии
// сбрасываются в любом случае.
func (a *Auth) Logout(ctx context.Context) error {
	err := a.client.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
	a.client.SetCredentials(Credentials{})
	return err
}

func (a *Auth) Health(ctx context.Context) error {
	return a.client.do(ctx, http.MethodGet, "/api/v1/health", nil, nil)
}
