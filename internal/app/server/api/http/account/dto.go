package account

import "itemdesk/internal/domain/user"

type registerInput struct {
	Body user.RegisterRequest
}

type registerOutput struct {
	Body registerResponse
}

type registerResponse struct {
	Status string `json:"status" example:"Ok"`
	UserID int    `json:"user_id"`
}

type loginInput struct {
	Body user.LoginRequest
}

type loginOutput struct {
	Body loginResponse
}

type loginResponse struct {
	Status    string `json:"status" example:"Ok"`
	Token     string `json:"token" doc:"Bearer токен сессии"`
	CSRFToken string `json:"csrf_token" doc:"Значение заголовка X-CSRF-Token"`
	UserID    int    `json:"user_id"`
}

type logoutOutput struct {
	Body logoutResponse
}

type logoutResponse struct {
	Status string `json:"status" example:"Ok"`
}
