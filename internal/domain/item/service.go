package item

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/exp/slog"

	"itemdesk/internal/domain/validation"
)

type Servicer interface {
	List(ctx context.Context, userID int) (ListResponse, error)
	Create(ctx context.Context, userID int, f Fields) (Item, error)
	Update(ctx context.Context, userID, itemID int, f Fields) (Item, error)
	Delete(ctx context.Context, userID, itemID int) error
	TogglePin(ctx context.Context, userID, itemID int) (Item, error)
	Reorder(ctx context.Context, userID int, positions []Position) error
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "item_service"),
	}
}

// List возвращает элементы владельца по возрастанию позиции.
func (s *Service) List(ctx context.Context, userID int) (ListResponse, error) {
	items, err := s.repo.List(ctx, userID)
	if err != nil {
		s.log.Error("failed to list items", "user_id", userID, "error", err)
		return ListResponse{}, fmt.Errorf("list items: %w", err)
	}
	if items == nil {
		items = []Item{}
	}

	return ListResponse{Records: items, Total: len(items)}, nil
}

func (s *Service) Create(ctx context.Context, userID int, f Fields) (Item, error) {
	if err := ValidateFields(f); err != nil {
		return Item{}, err
	}

	it, err := s.repo.Create(ctx, userID, f)
	if err != nil {
		s.log.Error("failed to create item", "user_id", userID, "error", err)
		return Item{}, fmt.Errorf("create item: %w", err)
	}

	s.log.Info("item created", "item_id", it.ID, "user_id", userID, "position", it.Position)
	return it, nil
}

func (s *Service) Update(ctx context.Context, userID, itemID int, f Fields) (Item, error) {
	if err := ValidateFields(f); err != nil {
		return Item{}, err
	}

	it, err := s.repo.Update(ctx, userID, itemID, f)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Item{}, ErrNotFound
		}
		s.log.Error("failed to update item", "item_id", itemID, "user_id", userID, "error", err)
		return Item{}, fmt.Errorf("update item: %w", err)
	}

	return it, nil
}

func (s *Service) Delete(ctx context.Context, userID, itemID int) error {
	if err := s.repo.Delete(ctx, userID, itemID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		s.log.Error("failed to delete item", "item_id", itemID, "user_id", userID, "error", err)
		return fmt.Errorf("delete item: %w", err)
	}

	s.log.Info("item deleted", "item_id", itemID, "user_id", userID)
	return nil
}

func (s *Service) TogglePin(ctx context.Context, userID, itemID int) (Item, error) {
	it, err := s.repo.TogglePin(ctx, userID, itemID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Item{}, ErrNotFound
		}
		s.log.Error("failed to toggle pin", "item_id", itemID, "user_id", userID, "error", err)
		return Item{}, fmt.Errorf("toggle pin: %w", err)
	}

	return it, nil
}

// Reorder проверяет, что все элементы принадлежат владельцу и не
// повторяются, затем применяет позиции. Повторный вызов с тем же набором
// дает то же состояние.
func (s *Service) Reorder(ctx context.Context, userID int, positions []Position) error {
	if verr := validation.Struct(ReorderRequest{Items: positions}); verr != nil {
		return verr
	}

	owned, err := s.repo.List(ctx, userID)
	if err != nil {
		return fmt.Errorf("list items for reorder: %w", err)
	}
	known := make(map[int]struct{}, len(owned))
	for _, it := range owned {
		known[it.ID] = struct{}{}
	}

	fields := validation.Fields{}
	seenID := make(map[int]struct{}, len(positions))
	seenPos := make(map[int]struct{}, len(positions))
	for i, p := range positions {
		idKey := fmt.Sprintf("items.%d.id", i)
		posKey := fmt.Sprintf("items.%d.position", i)

		if _, ok := known[p.ID]; !ok {
			fields.Add(idKey, fmt.Sprintf("The selected %s is invalid.", idKey))
		}
		if _, dup := seenID[p.ID]; dup {
			fields.Add(idKey, fmt.Sprintf("The %s field has a duplicate value.", idKey))
		}
		if _, dup := seenPos[p.Position]; dup {
			fields.Add(posKey, fmt.Sprintf("The %s field has a duplicate value.", posKey))
		}
		seenID[p.ID] = struct{}{}
		seenPos[p.Position] = struct{}{}
	}
	if !fields.Empty() {
		return validation.New(fields)
	}

	if err := s.repo.Reorder(ctx, userID, positions); err != nil {
		if errors.Is(err, ErrPositionConflict) {
			return validation.Single("items", "The items positions conflict with existing items.")
		}
		s.log.Error("failed to reorder items", "user_id", userID, "error", err)
		return fmt.Errorf("reorder items: %w", err)
	}

	s.log.Info("items reordered", "user_id", userID, "count", len(positions))
	return nil
}

// ValidateFields проверяет поля элемента: теги validate и перечисления.
// Используется и сервером, и клиентом для предварительной проверки.
func ValidateFields(f Fields) *validation.Error {
	fields := validation.Fields{}
	if verr := validation.Struct(f); verr != nil {
		fields = verr.Fields
	}
	if err := f.Type.Validate(); err != nil && !fields.Has("type") {
		fields.Add("type", "The selected type is invalid.")
	}
	if err := f.Color.Validate(); err != nil && !fields.Has("color") {
		fields.Add("color", "The selected color is invalid.")
	}
	if fields.Empty() {
		return nil
	}
	return validation.New(fields)
}
