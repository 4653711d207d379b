package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	domain "github.com/mohammadpnp/user-ingest/internal/domain/user"
	"github.com/mohammadpnp/user-ingest/internal/infrastructure/db/models"
)

type UserQueryRepository struct {
	db *gorm.DB
}

func NewUserQueryRepository(db *gorm.DB) *UserQueryRepository {
	return &UserQueryRepository{db: db}
}

// List returns one page of users in the store's default scan order.
func (r *UserQueryRepository) List(ctx context.Context, offset, limit int) ([]domain.User, error) {
	var rows []models.User

	err := r.db.WithContext(ctx).
		Offset(offset).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	users := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, toDomain(row))
	}
	return users, nil
}

func (r *UserQueryRepository) Count(ctx context.Context) (int64, error) {
	var total int64

	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Count(&total).Error
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return total, nil
}

func (r *UserQueryRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var row models.User

	err := r.db.WithContext(ctx).
		First(&row, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}

	record := toDomain(row)
	return &record, nil
}

func toDomain(row models.User) domain.User {
	return domain.User{
		ID:        row.ID,
		FirstName: row.FirstName,
		LastName:  row.LastName,
		Age:       row.Age,
		Email:     row.Email,
		FileName:  row.FileName,
	}
}
