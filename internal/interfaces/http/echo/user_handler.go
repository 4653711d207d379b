package echo

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	app "github.com/mohammadpnp/user-ingest/internal/application/user"
)

type UserHandler struct {
	listUsers app.ListUsers
	getUser   app.GetUserByID
}

type usersResponse struct {
	Success    bool             `json:"success"`
	Data       []app.UserOutput `json:"data"`
	TotalPages int64            `json:"total_pages"`
	NextPage   bool             `json:"next_page"`
}

type userResponse struct {
	Success bool           `json:"success"`
	Data    app.UserOutput `json:"data"`
}

func NewUserHandler(listUsers app.ListUsers, getUser app.GetUserByID) *UserHandler {
	return &UserHandler{listUsers: listUsers, getUser: getUser}
}

func (h *UserHandler) ListUsers(c echo.Context) error {
	limit := intQueryParam(c, "limit", 10)
	page := intQueryParam(c, "page", 1)

	out, err := h.listUsers.Execute(c.Request().Context(), app.ListUsersInput{
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		if errors.Is(err, app.ErrInvalidPagination) {
			return c.JSON(http.StatusBadRequest, errorResponse{
				Detail: "limit and page must be positive integers.",
			})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{
			Detail: "Failed to list users.",
		})
	}

	return c.JSON(http.StatusOK, usersResponse{
		Success:    true,
		Data:       out.Users,
		TotalPages: out.TotalPages,
		NextPage:   out.NextPage,
	})
}

func (h *UserHandler) GetUserByID(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Detail: "User id must be an integer.",
		})
	}

	out, err := h.getUser.Execute(c.Request().Context(), app.GetUserByIDInput{ID: id})
	if err != nil {
		if errors.Is(err, app.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{
				Detail: "User not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{
			Detail: "Failed to get user.",
		})
	}

	return c.JSON(http.StatusOK, userResponse{Success: true, Data: out})
}

func intQueryParam(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
