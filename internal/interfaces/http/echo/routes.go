package echo

import (
	"net/http"

	e "github.com/labstack/echo/v4"
)

func RegisterRoutes(server *e.Echo, uploadHandler *UploadHandler, userHandler *UserHandler) {
	server.GET("/", root)
	server.POST("/upload-csv/", uploadHandler.UploadCSV)
	server.GET("/users/", userHandler.ListUsers)
	server.GET("/users/:id", userHandler.GetUserByID)
}

func root(c e.Context) error {
	return c.JSON(http.StatusOK, baseResponse{
		Success: true,
		Message: "Welcome to the User Management API",
	})
}
