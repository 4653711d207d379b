package user

import "context"

type QueryRepository interface {
	List(ctx context.Context, offset, limit int) ([]User, error)
	Count(ctx context.Context) (int64, error)
	GetByID(ctx context.Context, id int64) (*User, error)
}
