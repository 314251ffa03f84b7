package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	dbm "tourvisto/internal/models/db_models"
	"tourvisto/pkg/utils"
)

type UserRepository interface {
	UpsertByAccountID(ctx context.Context, user *dbm.User) (*dbm.User, error)
	GetByAccountID(ctx context.Context, accountID string) (*dbm.User, error)
	ListUsers(ctx context.Context, limit, offset int) ([]dbm.User, int64, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) UpsertByAccountID(ctx context.Context, user *dbm.User) (*dbm.User, error) {
	var existing dbm.User
	err := r.db.WithContext(ctx).Where("account_id = ?", user.AccountID).First(&existing).Error
	if err == nil {
		updates := map[string]interface{}{
			"email":     user.Email,
			"name":      user.Name,
			"image_url": user.ImageURL,
		}
		if err := r.db.WithContext(ctx).Model(&existing).Updates(updates).Error; err != nil {
			return nil, err
		}
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepository) GetByAccountID(ctx context.Context, accountID string) (*dbm.User, error) {
	var user dbm.User
	err := r.db.WithContext(ctx).Where("account_id = ?", accountID).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) ListUsers(ctx context.Context, limit, offset int) ([]dbm.User, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&dbm.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []dbm.User
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}
