package echo_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	app "github.com/mohammadpnp/user-ingest/internal/application/user"
	httpecho "github.com/mohammadpnp/user-ingest/internal/interfaces/http/echo"
)

const sampleCSV = "FirstName,LastName,Age,Email\n" +
	"Alice,Smith,34,alice@example.com\n" +
	"Bob,Jones,29,bob@example.com\n"

func newUploadServer(t *testing.T) (*echo.Echo, *app.WorkQueue) {
	t.Helper()

	queue := app.NewWorkQueue()
	producer := app.NewCSVProducer(queue, 1000, nil)
	uploadHandler := httpecho.NewUploadHandler(app.NewUploadUsersFromCSV(producer, nil))
	userHandler := httpecho.NewUserHandler(&fakeListUsersUseCase{}, &fakeGetUserUseCase{})

	e := echo.New()
	httpecho.RegisterRoutes(e, uploadHandler, userHandler)
	return e, queue
}

func multipartRequest(t *testing.T, fieldName, fileName string, content []byte) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(fieldName, fileName)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/upload-csv/", body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	return req
}

func TestUploadCSVHandlerAccepted(t *testing.T) {
	t.Parallel()

	e, queue := newUploadServer(t)

	req := multipartRequest(t, "file", "users.csv", []byte(sampleCSV))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", rec.Code)
	}

	var got map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unexpected json: %v", err)
	}
	if got["success"] != true {
		t.Fatalf("expected success, got %#v", got["success"])
	}
	if got["message"] != "CSV file is being processed in the background" {
		t.Fatalf("unexpected message: %#v", got["message"])
	}

	deadline := time.After(5 * time.Second)
	for queue.Len() == 0 {
		select {
		case <-deadline:
			t.Fatal("expected batch queued after accepted upload")
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestUploadCSVHandlerRejectsNonCSVBeforeQueueing(t *testing.T) {
	t.Parallel()

	e, queue := newUploadServer(t)

	req := multipartRequest(t, "file", "data.txt", []byte(sampleCSV))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Invalid file type") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
	if queue.Len() != 0 {
		t.Fatalf("rejected upload must not touch the queue, got len %d", queue.Len())
	}
}

func TestUploadCSVHandlerMissingFileField(t *testing.T) {
	t.Parallel()

	e, queue := newUploadServer(t)

	req := multipartRequest(t, "attachment", "users.csv", []byte(sampleCSV))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if queue.Len() != 0 {
		t.Fatalf("expected untouched queue, got len %d", queue.Len())
	}
}

func TestRootHandler(t *testing.T) {
	t.Parallel()

	e, _ := newUploadServer(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Welcome to the User Management API") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}
