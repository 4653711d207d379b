package user

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/mohammadpnp/user-ingest/internal/domain/user"
)

type GetUserByIDInput struct {
	ID int64
}

type GetUserByID interface {
	Execute(ctx context.Context, in GetUserByIDInput) (UserOutput, error)
}

type getUserByID struct {
	repo domain.QueryRepository
}

func NewGetUserByID(repo domain.QueryRepository) GetUserByID {
	return &getUserByID{repo: repo}
}

func (uc *getUserByID) Execute(ctx context.Context, in GetUserByIDInput) (UserOutput, error) {
	record, err := uc.repo.GetByID(ctx, in.ID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return UserOutput{}, ErrUserNotFound
		}
		return UserOutput{}, fmt.Errorf("%w: %v", ErrGetUserByID, err)
	}

	return toUserOutput(*record), nil
}
