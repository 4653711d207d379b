package user

import "errors"

var (
	ErrInvalidUpload     = errors.New("invalid upload file type")
	ErrInvalidPagination = errors.New("invalid pagination parameters")
	ErrUserNotFound      = errors.New("user not found")
	ErrListUsers         = errors.New("failed to list users")
	ErrGetUserByID       = errors.New("failed to get user by id")
)
