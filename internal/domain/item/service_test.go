package item

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"itemdesk/internal/domain/validation"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context, userID int) ([]Item, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Item), args.Error(1)
}

func (m *MockRepository) Get(ctx context.Context, userID, itemID int) (Item, error) {
	args := m.Called(ctx, userID, itemID)
	return args.Get(0).(Item), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, userID int, f Fields) (Item, error) {
	args := m.Called(ctx, userID, f)
	return args.Get(0).(Item), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, userID, itemID int, f Fields) (Item, error) {
	args := m.Called(ctx, userID, itemID, f)
	return args.Get(0).(Item), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, userID, itemID int) error {
	args := m.Called(ctx, userID, itemID)
	return args.Error(0)
}

func (m *MockRepository) TogglePin(ctx context.Context, userID, itemID int) (Item, error) {
	args := m.Called(ctx, userID, itemID)
	return args.Get(0).(Item), args.Error(1)
}

func (m *MockRepository) Reorder(ctx context.Context, userID int, positions []Position) error {
	args := m.Called(ctx, userID, positions)
	return args.Error(0)
}

func validFields() Fields {
	return Fields{Title: "Купить молоко", Description: "2 литра", Type: TypeTask, Color: ColorGreen}
}

func TestService_List(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, slog.Default())

	repo.On("List", mock.Anything, 1).Return([]Item{{ID: 3, Position: 0}, {ID: 1, Position: 1}}, nil)

	resp, err := svc.List(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, 3, resp.Records[0].ID)

	repo.AssertExpectations(t)
}

func TestService_List_Empty(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, slog.Default())

	repo.On("List", mock.Anything, 1).Return(nil, nil)

	resp, err := svc.List(context.Background(), 1)
	require.NoError(t, err)
	assert.NotNil(t, resp.Records)
	assert.Equal(t, 0, resp.Total)
}

func TestService_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, slog.Default())
		f := validFields()

		repo.On("Create", mock.Anything, 7, f).Return(Item{ID: 10, UserID: 7, Position: 4}, nil)

		it, err := svc.Create(context.Background(), 7, f)
		require.NoError(t, err)
		assert.Equal(t, 10, it.ID)
		assert.Equal(t, 4, it.Position)
		repo.AssertExpectations(t)
	})

	t.Run("validation failure does not reach repository", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, slog.Default())

		_, err := svc.Create(context.Background(), 7, Fields{Type: "poem", Color: "blue"})

		var verr *validation.Error
		require.ErrorAs(t, err, &verr)
		assert.True(t, verr.Fields.Has("title"))
		assert.True(t, verr.Fields.Has("description"))
		assert.Equal(t, "The selected type is invalid.", verr.Fields.First("type"))
		assert.False(t, verr.Fields.Has("color"))
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("repository error", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, slog.Default())
		f := validFields()

		repo.On("Create", mock.Anything, 7, f).Return(Item{}, errors.New("database error"))

		_, err := svc.Create(context.Background(), 7, f)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database error")
	})
}

func TestService_Update(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, slog.Default())
		f := validFields()

		repo.On("Update", mock.Anything, 1, 99, f).Return(Item{}, ErrNotFound)

		_, err := svc.Update(context.Background(), 1, 99, f)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("title too long", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, slog.Default())
		f := validFields()
		f.Title = strings.Repeat("a", 256)

		_, err := svc.Update(context.Background(), 1, 2, f)

		var verr *validation.Error
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "The title field must not be greater than 255 characters.", verr.Fields.First("title"))
	})
}

func TestService_Delete(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, slog.Default())

	repo.On("Delete", mock.Anything, 1, 5).Return(nil)
	repo.On("Delete", mock.Anything, 1, 6).Return(ErrNotFound)

	assert.NoError(t, svc.Delete(context.Background(), 1, 5))
	assert.ErrorIs(t, svc.Delete(context.Background(), 1, 6), ErrNotFound)
}

func TestService_TogglePin(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, slog.Default())

	repo.On("TogglePin", mock.Anything, 1, 5).Return(Item{ID: 5, IsPinned: true}, nil)

	it, err := svc.TogglePin(context.Background(), 1, 5)
	require.NoError(t, err)
	assert.True(t, it.IsPinned)
}

func TestService_Reorder(t *testing.T) {
	owned := []Item{{ID: 1, Position: 0}, {ID: 2, Position: 1}, {ID: 3, Position: 2}}

	t.Run("applies positions", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, slog.Default())
		positions := []Position{{ID: 3, Position: 0}, {ID: 1, Position: 1}, {ID: 2, Position: 2}}

		repo.On("List", mock.Anything, 1).Return(owned, nil)
		repo.On("Reorder", mock.Anything, 1, positions).Return(nil).Twice()

		require.NoError(t, svc.Reorder(context.Background(), 1, positions))
		require.NoError(t, svc.Reorder(context.Background(), 1, positions))
		repo.AssertExpectations(t)
	})

	t.Run("per item errors", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, slog.Default())
		positions := []Position{{ID: 1, Position: 0}, {ID: 42, Position: 0}, {ID: 1, Position: 2}}

		repo.On("List", mock.Anything, 1).Return(owned, nil)

		err := svc.Reorder(context.Background(), 1, positions)

		var verr *validation.Error
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "The selected items.1.id is invalid.", verr.Fields.First("items.1.id"))
		assert.True(t, verr.Fields.Has("items.1.position"))
		assert.True(t, verr.Fields.Has("items.2.id"))
		repo.AssertNotCalled(t, "Reorder", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("negative position", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, slog.Default())

		err := svc.Reorder(context.Background(), 1, []Position{{ID: 1, Position: -1}})

		var verr *validation.Error
		require.ErrorAs(t, err, &verr)
		assert.True(t, verr.Fields.Has("items.0.position"))
	})

	t.Run("empty payload", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, slog.Default())

		err := svc.Reorder(context.Background(), 1, nil)

		var verr *validation.Error
		require.ErrorAs(t, err, &verr)
		assert.True(t, verr.Fields.Has("items"))
	})

	t.Run("conflict at commit", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, slog.Default())
		positions := []Position{{ID: 1, Position: 1}}

		repo.On("List", mock.Anything, 1).Return(owned, nil)
		repo.On("Reorder", mock.Anything, 1, positions).Return(ErrPositionConflict)

		err := svc.Reorder(context.Background(), 1, positions)

		var verr *validation.Error
		require.ErrorAs(t, err, &verr)
		assert.True(t, verr.Fields.Has("items"))
	})
}

func TestItem_Accessors(t *testing.T) {
	it := Item{ID: 4, Title: "T", Description: "D", Type: TypeLink, Color: ColorRed, IsPinned: true, Position: 2}

	assert.Equal(t, 4, it.GetID())
	assert.Equal(t, 2, it.GetPosition())
	assert.Equal(t, Fields{Title: "T", Description: "D", Type: TypeLink, Color: ColorRed}, it.EditableFields())
	assert.Equal(t, []string{"T", "D"}, it.DisplayFields())
	assert.Equal(t, map[string]string{"type": "link", "color": "red"}, it.Classes())
	assert.True(t, it.Flagged())
}

func TestType_Validate(t *testing.T) {
	for _, typ := range Types {
		assert.NoError(t, typ.Validate())
	}
	assert.Error(t, Type("poem").Validate())

	for _, c := range Colors {
		assert.NoError(t, c.Validate())
	}
	_, err := ParseColor("pink")
	assert.Error(t, err)
}
