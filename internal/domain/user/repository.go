package user

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, u NewUser) (User, error)
	Count(ctx context.Context) (int, error)
	Get(ctx context.Context, id int) (User, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	List(ctx context.Context) ([]User, error)
	Update(ctx context.Context, id int, f Fields) (User, error)
	Delete(ctx context.Context, id int) error
	ToggleVerified(ctx context.Context, id int) (User, error)
}
