package user

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"

	"itemdesk/internal/domain/validation"
)

// MockRepository is a mock implementation of the Repository interface for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, u NewUser) (User, error) {
	args := m.Called(ctx, u)
	return args.Get(0).(User), args.Error(1)
}

func (m *MockRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) Get(ctx context.Context, id int) (User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(User), args.Error(1)
}

func (m *MockRepository) FindByEmail(ctx context.Context, email string) (User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(User), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context) ([]User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]User), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, id int, f Fields) (User, error) {
	args := m.Called(ctx, id, f)
	return args.Get(0).(User), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) ToggleVerified(ctx context.Context, id int) (User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(User), args.Error(1)
}

func newService(repo Repository) *Service {
	return NewService(repo, NewPasswordValidator(), slog.Default())
}

var (
	admin  = User{ID: 1, Name: "Admin", Email: "admin@example.com", Role: RoleAdmin}
	member = User{ID: 2, Name: "Member", Email: "member@example.com", Role: RoleUser}
)

func TestService_Register(t *testing.T) {
	req := RegisterRequest{
		Name:                 "John Doe",
		Email:                " John@Example.com ",
		Password:             "secret123",
		PasswordConfirmation: "secret123",
	}

	t.Run("first user becomes admin", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newService(repo)

		repo.On("FindByEmail", mock.Anything, "john@example.com").Return(User{}, ErrNotFound)
		repo.On("Count", mock.Anything).Return(0, nil)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(nu NewUser) bool {
			return nu.Role == RoleAdmin && nu.IsVerified &&
				bcrypt.CompareHashAndPassword([]byte(nu.PasswordHash), []byte("secret123")) == nil
		})).Return(User{ID: 1, Role: RoleAdmin}, nil)

		u, err := svc.Register(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 1, u.ID)
		repo.AssertExpectations(t)
	})

	t.Run("next users get role user", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newService(repo)

		repo.On("FindByEmail", mock.Anything, "john@example.com").Return(User{}, ErrNotFound)
		repo.On("Count", mock.Anything).Return(3, nil)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(nu NewUser) bool {
			return nu.Role == RoleUser && !nu.IsVerified && nu.Email == "john@example.com"
		})).Return(User{ID: 4, Role: RoleUser}, nil)

		_, err := svc.Register(context.Background(), req)
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("password mismatch and taken email", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newService(repo)

		bad := req
		bad.PasswordConfirmation = "secret124"
		repo.On("FindByEmail", mock.Anything, "john@example.com").Return(member, nil)

		_, err := svc.Register(context.Background(), bad)

		var verr *validation.Error
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "The password confirmation field does not match.", verr.Fields.First("password_confirmation"))
		assert.Equal(t, "The email has already been taken.", verr.Fields.First("email"))
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("weak password", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newService(repo)

		weak := req
		weak.Password, weak.PasswordConfirmation = "short", "short"
		repo.On("FindByEmail", mock.Anything, "john@example.com").Return(User{}, ErrNotFound)

		_, err := svc.Register(context.Background(), weak)

		var verr *validation.Error
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields.First("password"), "at least 8 characters")
	})

	t.Run("unique violation at insert", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newService(repo)

		repo.On("FindByEmail", mock.Anything, "john@example.com").Return(User{}, ErrNotFound)
		repo.On("Count", mock.Anything).Return(1, nil)
		repo.On("Create", mock.Anything, mock.Anything).Return(User{}, ErrEmailTaken)

		_, err := svc.Register(context.Background(), req)

		var verr *validation.Error
		require.ErrorAs(t, err, &verr)
		assert.True(t, verr.Fields.Has("email"))
	})
}

func TestService_Authenticate(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	stored := User{ID: 5, Email: "john@example.com", Password: string(hash)}

	tests := []struct {
		name     string
		email    string
		password string
		found    bool
		wantErr  error
	}{
		{name: "valid credentials", email: "JOHN@example.com", password: "secret123", found: true},
		{name: "wrong password", email: "john@example.com", password: "secret124", found: true, wantErr: ErrInvalidAuth},
		{name: "unknown email", email: "john@example.com", password: "secret123", found: false, wantErr: ErrInvalidAuth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepository)
			svc := newService(repo)

			if tt.found {
				repo.On("FindByEmail", mock.Anything, "john@example.com").Return(stored, nil)
			} else {
				repo.On("FindByEmail", mock.Anything, "john@example.com").Return(User{}, ErrNotFound)
			}

			u, err := svc.Authenticate(context.Background(), LoginRequest{Email: tt.email, Password: tt.password})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 5, u.ID)
		})
	}
}

func TestService_Authenticate_RepositoryError(t *testing.T) {
	repo := new(MockRepository)
	svc := newService(repo)

	repo.On("FindByEmail", mock.Anything, "a@b.c").Return(User{}, errors.New("database error"))

	_, err := svc.Authenticate(context.Background(), LoginRequest{Email: "a@b.c", Password: "x"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidAuth)
}

func TestService_Create(t *testing.T) {
	req := CreateRequest{
		Name:                 "Jane",
		Email:                "jane@example.com",
		Role:                 RoleModerator,
		Password:             "secret123",
		PasswordConfirmation: "secret123",
	}

	t.Run("non admin is forbidden", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newService(repo)
		repo.On("Get", mock.Anything, 2).Return(member, nil)

		_, err := svc.Create(context.Background(), 2, req)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("admin creates with role", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newService(repo)
		repo.On("Get", mock.Anything, 1).Return(admin, nil)
		repo.On("FindByEmail", mock.Anything, "jane@example.com").Return(User{}, ErrNotFound)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(nu NewUser) bool {
			return nu.Role == RoleModerator && nu.Name == "Jane"
		})).Return(User{ID: 9, Role: RoleModerator}, nil)

		u, err := svc.Create(context.Background(), 1, req)
		require.NoError(t, err)
		assert.Equal(t, 9, u.ID)
	})

	t.Run("invalid role", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newService(repo)
		repo.On("Get", mock.Anything, 1).Return(admin, nil)
		repo.On("FindByEmail", mock.Anything, "jane@example.com").Return(User{}, ErrNotFound)

		bad := req
		bad.Role = "root"
		_, err := svc.Create(context.Background(), 1, bad)

		var verr *validation.Error
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "The selected role is invalid.", verr.Fields.First("role"))
	})
}

func TestService_Update(t *testing.T) {
	f := Fields{Name: "Member", Email: "Member@Example.com", Role: RoleModerator}

	t.Run("success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newService(repo)
		repo.On("Get", mock.Anything, 1).Return(admin, nil)
		repo.On("Update", mock.Anything, 2, Fields{Name: "Member", Email: "member@example.com", Role: RoleModerator}).
			Return(User{ID: 2, Role: RoleModerator}, nil)

		u, err := svc.Update(context.Background(), 1, 2, f)
		require.NoError(t, err)
		assert.Equal(t, RoleModerator, u.Role)
	})

	t.Run("bad email", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newService(repo)
		repo.On("Get", mock.Anything, 1).Return(admin, nil)

		bad := f
		bad.Email = "not-an-email"
		_, err := svc.Update(context.Background(), 1, 2, bad)

		var verr *validation.Error
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "The email field must be a valid email address.", verr.Fields.First("email"))
	})

	t.Run("taken email", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newService(repo)
		repo.On("Get", mock.Anything, 1).Return(admin, nil)
		repo.On("Update", mock.Anything, 2, mock.Anything).Return(User{}, ErrEmailTaken)

		_, err := svc.Update(context.Background(), 1, 2, f)

		var verr *validation.Error
		require.ErrorAs(t, err, &verr)
		assert.True(t, verr.Fields.Has("email"))
	})

	t.Run("not found", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newService(repo)
		repo.On("Get", mock.Anything, 1).Return(admin, nil)
		repo.On("Update", mock.Anything, 3, mock.Anything).Return(User{}, ErrNotFound)

		_, err := svc.Update(context.Background(), 1, 3, f)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestService_Delete(t *testing.T) {
	t.Run("self delete is blocked", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newService(repo)
		repo.On("Get", mock.Anything, 1).Return(admin, nil)

		err := svc.Delete(context.Background(), 1, 1)
		assert.ErrorIs(t, err, ErrSelfDelete)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("admin deletes other", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newService(repo)
		repo.On("Get", mock.Anything, 1).Return(admin, nil)
		repo.On("Delete", mock.Anything, 2).Return(nil)

		require.NoError(t, svc.Delete(context.Background(), 1, 2))
		repo.AssertExpectations(t)
	})

	t.Run("unknown actor is forbidden", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newService(repo)
		repo.On("Get", mock.Anything, 77).Return(User{}, ErrNotFound)

		assert.ErrorIs(t, svc.Delete(context.Background(), 77, 2), ErrForbidden)
	})
}

func TestService_ToggleVerified(t *testing.T) {
	repo := new(MockRepository)
	svc := newService(repo)
	repo.On("Get", mock.Anything, 1).Return(admin, nil)
	repo.On("ToggleVerified", mock.Anything, 2).Return(User{ID: 2, IsVerified: true}, nil)

	u, err := svc.ToggleVerified(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.True(t, u.IsVerified)
}

func TestService_List(t *testing.T) {
	repo := new(MockRepository)
	svc := newService(repo)
	repo.On("Get", mock.Anything, 2).Return(member, nil)
	repo.On("List", mock.Anything).Return([]User{admin, member}, nil)

	resp, err := svc.List(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
}

func TestUser_Accessors(t *testing.T) {
	u := User{ID: 3, Name: "John Doe", Email: "john@example.com", Role: RoleModerator, IsVerified: true}

	assert.Equal(t, 3, u.GetID())
	assert.Equal(t, Fields{Name: "John Doe", Email: "john@example.com", Role: RoleModerator}, u.EditableFields())
	assert.Equal(t, []string{"John Doe", "john@example.com"}, u.DisplayFields())
	assert.Equal(t, map[string]string{"role": "moderator"}, u.Classes())
	assert.True(t, u.Flagged())
	assert.False(t, u.IsAdmin())
}

func TestValidateCreateRequest(t *testing.T) {
	valid := CreateRequest{
		Name:                 "Bob",
		Email:                "bob@example.com",
		Role:                 RoleUser,
		Password:             "secret123",
		PasswordConfirmation: "secret123",
	}
	assert.Nil(t, ValidateCreateRequest(valid))

	mismatch := valid
	mismatch.PasswordConfirmation = "other"
	verr := ValidateCreateRequest(mismatch)
	require.NotNil(t, verr)
	assert.Equal(t, "The password confirmation field does not match.", verr.Fields.First("password_confirmation"))

	badRole := valid
	badRole.Role = "root"
	verr = ValidateCreateRequest(badRole)
	require.NotNil(t, verr)
	assert.Equal(t, "The selected role is invalid.", verr.Fields.First("role"))
}
