package user_test

import (
	"context"
	"errors"
	"testing"
	"time"

	app "github.com/mohammadpnp/user-ingest/internal/application/user"
)

func TestUploadUsersFromCSVRejectsNonCSV(t *testing.T) {
	t.Parallel()

	queue := app.NewWorkQueue()
	producer := app.NewCSVProducer(queue, 1000, nil)
	uc := app.NewUploadUsersFromCSV(producer, nil)

	err := uc.Execute(context.Background(), app.UploadUsersFromCSVInput{
		FileName: "data.txt",
		Content:  csvWithRows(5),
	})
	if !errors.Is(err, app.ErrInvalidUpload) {
		t.Fatalf("expected ErrInvalidUpload, got %v", err)
	}
	if queue.Len() != 0 {
		t.Fatalf("rejected upload must not touch the queue, got len %d", queue.Len())
	}
}

func TestUploadUsersFromCSVRejectsEmptyFileName(t *testing.T) {
	t.Parallel()

	queue := app.NewWorkQueue()
	producer := app.NewCSVProducer(queue, 1000, nil)
	uc := app.NewUploadUsersFromCSV(producer, nil)

	err := uc.Execute(context.Background(), app.UploadUsersFromCSVInput{FileName: "  "})
	if !errors.Is(err, app.ErrInvalidUpload) {
		t.Fatalf("expected ErrInvalidUpload, got %v", err)
	}
}

func TestUploadUsersFromCSVQueuesInBackground(t *testing.T) {
	t.Parallel()

	queue := app.NewWorkQueue()
	producer := app.NewCSVProducer(queue, 10, nil)
	uc := app.NewUploadUsersFromCSV(producer, nil)

	// The request context is already cancelled; processing must continue
	// anyway because acceptance is decoupled from persistence.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := uc.Execute(ctx, app.UploadUsersFromCSVInput{
		FileName: "Users.CSV",
		Content:  csvWithRows(25),
	}); err != nil {
		t.Fatalf("expected acceptance, got %v", err)
	}

	deadline := time.After(5 * time.Second)
	for queue.Len() < 3 {
		select {
		case <-deadline:
			t.Fatalf("expected 3 batches queued, got %d", queue.Len())
		case <-time.After(10 * time.Millisecond):
		}
	}
}
