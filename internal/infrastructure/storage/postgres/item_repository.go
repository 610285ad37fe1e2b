package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"golang.org/x/exp/slog"

	"itemdesk/internal/domain/item"
)

const (
	itemColumns            = `id, user_id, title, description, type, color, is_pinned, position, created_at, updated_at`
	itemsPositionConstrain = "items_user_position_key"
)

type ItemRepository struct {
	db  *Storage
	log *slog.Logger
}

func NewItemRepository(db *Storage, log *slog.Logger) *ItemRepository {
	return &ItemRepository{
		db:  db,
		log: log.With("component", "item_repository"),
	}
}

func scanItem(row pgx.Row) (item.Item, error) {
	var it item.Item
	err := row.Scan(&it.ID, &it.UserID, &it.Title, &it.Description, &it.Type, &it.Color,
		&it.IsPinned, &it.Position, &it.CreatedAt, &it.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return it, item.ErrNotFound
	}
	return it, err
}

func (r *ItemRepository) List(ctx context.Context, userID int) ([]item.Item, error) {
	rows, err := r.db.Pool().Query(ctx,
		`SELECT `+itemColumns+` FROM items WHERE user_id = $1 ORDER BY position, id`, userID)
	if err != nil {
		return nil, fmt.Errorf("select items: %w", err)
	}
	defer rows.Close()

	var items []item.Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *ItemRepository) Get(ctx context.Context, userID, itemID int) (item.Item, error) {
	return scanItem(r.db.Pool().QueryRow(ctx,
		`SELECT `+itemColumns+` FROM items WHERE id = $1 AND user_id = $2`, itemID, userID))
}

// Create блокирует строку владельца, чтобы параллельные вставки не получили
// одинаковую позицию.
func (r *ItemRepository) Create(ctx context.Context, userID int, f item.Fields) (item.Item, error) {
	var created item.Item

	err := pgx.BeginFunc(ctx, r.db.Pool(), func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `SELECT 1 FROM users WHERE id = $1 FOR UPDATE`, userID); err != nil {
			return fmt.Errorf("lock owner: %w", err)
		}

		var err error
		created, err = scanItem(tx.QueryRow(ctx,
			`INSERT INTO items (user_id, title, description, type, color, position)
             SELECT $1, $2, $3, $4, $5, COALESCE(MAX(position) + 1, 0)
             FROM items WHERE user_id = $1
             RETURNING `+itemColumns,
			userID, f.Title, f.Description, f.Type, f.Color))
		return err
	})
	if err != nil {
		return item.Item{}, fmt.Errorf("insert item: %w", err)
	}

	return created, nil
}

func (r *ItemRepository) Update(ctx context.Context, userID, itemID int, f item.Fields) (item.Item, error) {
	return scanItem(r.db.Pool().QueryRow(ctx,
		`UPDATE items SET title = $3, description = $4, type = $5, color = $6, updated_at = NOW()
         WHERE id = $1 AND user_id = $2
         RETURNING `+itemColumns,
		itemID, userID, f.Title, f.Description, f.Type, f.Color))
}

func (r *ItemRepository) Delete(ctx context.Context, userID, itemID int) error {
	tag, err := r.db.Pool().Exec(ctx, `DELETE FROM items WHERE id = $1 AND user_id = $2`, itemID, userID)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return item.ErrNotFound
	}
	return nil
}

func (r *ItemRepository) TogglePin(ctx context.Context, userID, itemID int) (item.Item, error) {
	return scanItem(r.db.Pool().QueryRow(ctx,
		`UPDATE items SET is_pinned = NOT is_pinned, updated_at = NOW()
         WHERE id = $1 AND user_id = $2
         RETURNING `+itemColumns,
		itemID, userID))
}

// Reorder обновляет позиции пакетом в одной транзакции. Уникальность
// (user_id, position) проверяется при фиксации.
func (r *ItemRepository) Reorder(ctx context.Context, userID int, positions []item.Position) error {
	err := pgx.BeginFunc(ctx, r.db.Pool(), func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for _, p := range positions {
			batch.Queue(
				`UPDATE items SET position = $3, updated_at = NOW()
                 WHERE id = $1 AND user_id = $2 AND position <> $3`,
				p.ID, userID, p.Position)
		}
		return tx.SendBatch(ctx, batch).Close()
	})
	if err != nil {
		if isUniqueViolation(err, itemsPositionConstrain) {
			return item.ErrPositionConflict
		}
		return fmt.Errorf("reorder items: %w", err)
	}

	return nil
}
