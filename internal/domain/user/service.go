package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"

	"itemdesk/internal/domain/validation"
)

type Servicer interface {
	Register(ctx context.Context, req RegisterRequest) (User, error)
	Authenticate(ctx context.Context, req LoginRequest) (User, error)
	List(ctx context.Context, actorID int) (ListResponse, error)
	Create(ctx context.Context, actorID int, req CreateRequest) (User, error)
	Update(ctx context.Context, actorID, userID int, f Fields) (User, error)
	Delete(ctx context.Context, actorID, userID int) error
	ToggleVerified(ctx context.Context, actorID, userID int) (User, error)
}

type Service struct {
	repo      Repository
	validator Validator
	log       *slog.Logger
}

func NewService(repo Repository, validator Validator, log *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		validator: validator,
		log:       log.With("component", "user_service"),
	}
}

// Register создает учетную запись. Первый зарегистрированный пользователь
// получает роль admin и сразу считается подтвержденным.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (User, error) {
	req.Email = normalizeEmail(req.Email)
	fields := s.checkAccount(ctx, req, req.Name, req.Email, req.Password)
	if !fields.Empty() {
		s.log.Debug("registration validation failed", "email", req.Email)
		return User{}, validation.New(fields)
	}

	count, err := s.repo.Count(ctx)
	if err != nil {
		return User{}, fmt.Errorf("count users: %w", err)
	}

	nu := NewUser{Name: req.Name, Email: req.Email, Role: RoleUser}
	if count == 0 {
		nu.Role = RoleAdmin
		nu.IsVerified = true
	}

	return s.insert(ctx, nu, req.Password)
}

func (s *Service) Authenticate(ctx context.Context, req LoginRequest) (User, error) {
	u, err := s.repo.FindByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, ErrInvalidAuth
		}
		return User{}, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)); err != nil {
		return User{}, ErrInvalidAuth
	}

	return u, nil
}

func (s *Service) List(ctx context.Context, actorID int) (ListResponse, error) {
	if _, err := s.actor(ctx, actorID); err != nil {
		return ListResponse{}, err
	}

	users, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("failed to list users", "error", err)
		return ListResponse{}, fmt.Errorf("list users: %w", err)
	}
	if users == nil {
		users = []User{}
	}

	return ListResponse{Records: users, Total: len(users)}, nil
}

func (s *Service) Create(ctx context.Context, actorID int, req CreateRequest) (User, error) {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return User{}, err
	}

	req.Email = normalizeEmail(req.Email)
	fields := s.checkAccount(ctx, req, req.Name, req.Email, req.Password)
	if err := req.Role.Validate(); err != nil {
		fields.Add("role", "The selected role is invalid.")
	}
	if !fields.Empty() {
		return User{}, validation.New(fields)
	}

	return s.insert(ctx, NewUser{Name: req.Name, Email: req.Email, Role: req.Role}, req.Password)
}

func (s *Service) Update(ctx context.Context, actorID, userID int, f Fields) (User, error) {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return User{}, err
	}

	f.Email = normalizeEmail(f.Email)
	if verr := ValidateFields(f); verr != nil {
		return User{}, verr
	}

	u, err := s.repo.Update(ctx, userID, f)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return User{}, ErrNotFound
		case errors.Is(err, ErrEmailTaken):
			return User{}, validation.Single("email", "The email has already been taken.")
		}
		s.log.Error("failed to update user", "user_id", userID, "error", err)
		return User{}, fmt.Errorf("update user: %w", err)
	}

	return u, nil
}

func (s *Service) Delete(ctx context.Context, actorID, userID int) error {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return err
	}
	if actorID == userID {
		return ErrSelfDelete
	}

	if err := s.repo.Delete(ctx, userID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		s.log.Error("failed to delete user", "user_id", userID, "error", err)
		return fmt.Errorf("delete user: %w", err)
	}

	s.log.Info("user deleted", "user_id", userID, "actor_id", actorID)
	return nil
}

func (s *Service) ToggleVerified(ctx context.Context, actorID, userID int) (User, error) {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return User{}, err
	}

	u, err := s.repo.ToggleVerified(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("toggle verified: %w", err)
	}

	return u, nil
}

// ValidateFields проверяет поля пользователя при обновлении.
func ValidateFields(f Fields) *validation.Error {
	fields := validation.Fields{}
	if verr := validation.Struct(f); verr != nil {
		fields = verr.Fields
	}
	if err := f.Role.Validate(); err != nil {
		fields.Add("role", "The selected role is invalid.")
	}
	if fields.Empty() {
		return nil
	}
	return validation.New(fields)
}

// ValidateCreateRequest проверяет форму создания без обращения к хранилищу:
// обязательные поля, совпадение пароля с подтверждением, роль.
func ValidateCreateRequest(req CreateRequest) *validation.Error {
	fields := validation.Fields{}
	if verr := validation.Struct(req); verr != nil {
		fields = verr.Fields
	}
	if err := req.Role.Validate(); err != nil && !fields.Has("role") {
		fields.Add("role", "The selected role is invalid.")
	}
	if fields.Empty() {
		return nil
	}
	return validation.New(fields)
}

// checkAccount собирает ошибки полей учетной записи: теги, имя, пароль и
// занятость email.
func (s *Service) checkAccount(ctx context.Context, req any, name, email, password string) validation.Fields {
	fields := validation.Fields{}
	if verr := validation.Struct(req); verr != nil {
		fields = verr.Fields
	}
	if !fields.Has("name") {
		if err := s.validator.ValidateName(name); err != nil {
			fields.Add("name", err.Error())
		}
	}
	if !fields.Has("password") {
		if err := s.validator.ValidatePassword(password); err != nil {
			fields.Add("password", err.Error())
		}
	}
	if !fields.Has("email") {
		if _, err := s.repo.FindByEmail(ctx, email); err == nil {
			fields.Add("email", "The email has already been taken.")
		}
	}
	return fields
}

func (s *Service) insert(ctx context.Context, nu NewUser, password string) (User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, fmt.Errorf("Хэш пароля: %w", err)
	}
	nu.PasswordHash = string(hash)

	u, err := s.repo.Create(ctx, nu)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return User{}, validation.Single("email", "The email has already been taken.")
		}
		s.log.Error("failed to create user", "email", nu.Email, "error", err)
		return User{}, fmt.Errorf("create user: %w", err)
	}

	s.log.Info("user created", "user_id", u.ID, "role", u.Role)
	return u, nil
}

func (s *Service) actor(ctx context.Context, actorID int) (User, error) {
	u, err := s.repo.Get(ctx, actorID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, ErrForbidden
		}
		return User{}, fmt.Errorf("get actor: %w", err)
	}
	return u, nil
}

func (s *Service) requireAdmin(ctx context.Context, actorID int) error {
	u, err := s.actor(ctx, actorID)
	if err != nil {
		return err
	}
	if !u.IsAdmin() {
		return ErrForbidden
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
