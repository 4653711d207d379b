package user

import (
	"context"
	"fmt"

	domain "github.com/mohammadpnp/user-ingest/internal/domain/user"
)

type UserOutput struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Age       int    `json:"age"`
	Email     string `json:"email"`
	FileName  string `json:"fileName"`
}

type ListUsersInput struct {
	Page  int
	Limit int
}

type ListUsersOutput struct {
	Users      []UserOutput
	TotalPages int64
	NextPage   bool
}

type ListUsers interface {
	Execute(ctx context.Context, in ListUsersInput) (ListUsersOutput, error)
}

type listUsers struct {
	repo domain.QueryRepository
}

func NewListUsers(repo domain.QueryRepository) ListUsers {
	return &listUsers{repo: repo}
}

// Execute returns one page of users in store-native order. No upper bound is
// enforced on Limit; callers get exactly what they ask for.
func (uc *listUsers) Execute(ctx context.Context, in ListUsersInput) (ListUsersOutput, error) {
	if in.Page < 1 || in.Limit < 1 {
		return ListUsersOutput{}, ErrInvalidPagination
	}

	offset := (in.Page - 1) * in.Limit

	rows, err := uc.repo.List(ctx, offset, in.Limit)
	if err != nil {
		return ListUsersOutput{}, fmt.Errorf("%w: %v", ErrListUsers, err)
	}

	total, err := uc.repo.Count(ctx)
	if err != nil {
		return ListUsersOutput{}, fmt.Errorf("%w: %v", ErrListUsers, err)
	}

	totalPages := (total + int64(in.Limit) - 1) / int64(in.Limit)

	out := ListUsersOutput{
		Users:      make([]UserOutput, 0, len(rows)),
		TotalPages: totalPages,
		NextPage:   int64(in.Page) < totalPages,
	}
	for _, row := range rows {
		out.Users = append(out.Users, toUserOutput(row))
	}

	return out, nil
}

func toUserOutput(record domain.User) UserOutput {
	return UserOutput{
		ID:        record.ID,
		FirstName: record.FirstName,
		LastName:  record.LastName,
		Age:       record.Age,
		Email:     record.Email,
		FileName:  record.FileName,
	}
}
