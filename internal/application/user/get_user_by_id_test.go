package user_test

import (
	"context"
	"errors"
	"testing"

	app "github.com/mohammadpnp/user-ingest/internal/application/user"
)

func TestGetUserByIDSuccess(t *testing.T) {
	t.Parallel()

	uc := app.NewGetUserByID(&fakeQueryRepo{users: storedUsers(3)})

	out, err := uc.Execute(context.Background(), app.GetUserByIDInput{ID: 2})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if out.ID != 2 {
		t.Fatalf("unexpected id: %d", out.ID)
	}
	if out.FirstName != "First1" {
		t.Fatalf("unexpected first name: %q", out.FirstName)
	}
	if out.Email != "user1@example.com" {
		t.Fatalf("unexpected email: %q", out.Email)
	}
}

func TestGetUserByIDNotFound(t *testing.T) {
	t.Parallel()

	uc := app.NewGetUserByID(&fakeQueryRepo{users: storedUsers(3)})

	_, err := uc.Execute(context.Background(), app.GetUserByIDInput{ID: 99})
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, app.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestGetUserByIDRepositoryError(t *testing.T) {
	t.Parallel()

	uc := app.NewGetUserByID(&fakeQueryRepo{returnErr: errors.New("db down")})

	_, err := uc.Execute(context.Background(), app.GetUserByIDInput{ID: 1})
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, app.ErrGetUserByID) {
		t.Fatalf("expected ErrGetUserByID, got %v", err)
	}
}
