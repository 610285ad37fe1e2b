package user

import (
	"fmt"
	"time"

	"github.com/danielgtaylor/huma/v2"
)

type Role string

const (
	RoleAdmin     Role = "admin"
	RoleModerator Role = "moderator"
	RoleUser      Role = "user"
)

var Roles = []Role{RoleAdmin, RoleModerator, RoleUser}

func (Role) Schema(huma.Registry) *huma.Schema {
	enum := make([]any, len(Roles))
	for i, r := range Roles {
		enum[i] = string(r)
	}
	return &huma.Schema{
		Type:        huma.TypeString,
		Enum:        enum,
		Description: "Роль пользователя",
		Examples:    []any{RoleUser},
	}
}

func (r Role) Validate() error {
	switch r {
	case RoleAdmin, RoleModerator, RoleUser:
		return nil
	}
	return fmt.Errorf("неверная роль: %q", string(r))
}

func (r Role) String() string {
	return string(r)
}

type User struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       Role      `json:"role"`
	IsVerified bool      `json:"is_verified"`
	Password   string    `json:"-"` // хэш
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Fields содержит редактируемые поля пользователя.
type Fields struct {
	Name  string `json:"name" validate:"required,max=255" doc:"Имя"`
	Email string `json:"email" validate:"required,email,max=255" doc:"Email"`
	Role  Role   `json:"role" doc:"Роль: admin, moderator, user"`
}

// CreateRequest используется администратором для создания пользователя.
type CreateRequest struct {
	Name                 string `json:"name" validate:"required,max=255" doc:"Имя"`
	Email                string `json:"email" validate:"required,email,max=255" doc:"Email"`
	Role                 Role   `json:"role" doc:"Роль: admin, moderator, user"`
	Password             string `json:"password" validate:"required" doc:"Пароль"`
	PasswordConfirmation string `json:"password_confirmation" validate:"eqfield=Password" doc:"Повтор пароля"`
}

// Defaults возвращает значения формы создания по умолчанию.
func Defaults() CreateRequest {
	return CreateRequest{Role: RoleUser}
}

// RegisterRequest для самостоятельной регистрации
type RegisterRequest struct {
	Name                 string `json:"name" validate:"required,max=255" doc:"Имя"`
	Email                string `json:"email" validate:"required,email,max=255" doc:"Email"`
	Password             string `json:"password" validate:"required" doc:"Пароль"`
	PasswordConfirmation string `json:"password_confirmation" validate:"eqfield=Password" doc:"Повтор пароля"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" doc:"Email"`
	Password string `json:"password" validate:"required" doc:"Пароль"`
}

// NewUser передается в хранилище при вставке.
type NewUser struct {
	Name         string
	Email        string
	Role         Role
	PasswordHash string
	IsVerified   bool
}

type ListResponse struct {
	Records []User `json:"records"`
	Total   int    `json:"total"`
}

func (u User) GetID() int { return u.ID }

func (u User) EditableFields() Fields {
	return Fields{Name: u.Name, Email: u.Email, Role: u.Role}
}

func (u User) DisplayFields() []string {
	return []string{u.Name, u.Email}
}

func (u User) Classes() map[string]string {
	return map[string]string{"role": string(u.Role)}
}

// Flagged сообщает, подтвержден ли пользователь.
func (u User) Flagged() bool { return u.IsVerified }

// IsAdmin сообщает, может ли пользователь управлять другими.
func (u User) IsAdmin() bool { return u.Role == RoleAdmin }
