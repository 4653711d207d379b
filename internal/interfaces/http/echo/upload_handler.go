package echo

import (
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	app "github.com/mohammadpnp/user-ingest/internal/application/user"
)

type UploadHandler struct {
	useCase app.UploadUsersFromCSV
}

type baseResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

func NewUploadHandler(useCase app.UploadUsersFromCSV) *UploadHandler {
	return &UploadHandler{useCase: useCase}
}

// UploadCSV accepts a multipart CSV upload and hands it to the ingestion
// pipeline. A 202 only means the file passed validation; insertion happens
// in the background and its outcome is never reported here.
func (h *UploadHandler) UploadCSV(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Detail: "Missing file field in multipart form.",
		})
	}

	src, err := fileHeader.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Detail: "Could not read uploaded file.",
		})
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Detail: "Could not read uploaded file.",
		})
	}

	err = h.useCase.Execute(c.Request().Context(), app.UploadUsersFromCSVInput{
		FileName: fileHeader.Filename,
		Content:  content,
	})
	if err != nil {
		if errors.Is(err, app.ErrInvalidUpload) {
			return c.JSON(http.StatusBadRequest, errorResponse{
				Detail: "Invalid file type. Please upload a CSV file.",
			})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{
			Detail: "Failed to process upload.",
		})
	}

	return c.JSON(http.StatusAccepted, baseResponse{
		Success: true,
		Message: "CSV file is being processed in the background",
	})
}
