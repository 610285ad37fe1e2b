package item

import (
	"context"
)

type Repository interface {
	List(ctx context.Context, userID int) ([]Item, error)
	Get(ctx context.Context, userID, itemID int) (Item, error)
	// Create назначает позицию max(position)+1 в рамках владельца.
	Create(ctx context.Context, userID int, f Fields) (Item, error)
	Update(ctx context.Context, userID, itemID int, f Fields) (Item, error)
	Delete(ctx context.Context, userID, itemID int) error
	TogglePin(ctx context.Context, userID, itemID int) (Item, error)
	// Reorder применяет позиции в одной транзакции.
	Reorder(ctx context.Context, userID int, positions []Position) error
}
