package repository

import (
	"context"
	"errors"

	"github.com/user/cinema/internal/apperr"
	"github.com/user/cinema/internal/model"
	"gorm.io/gorm"
)

type UserRepository struct {
	crud[model.User, *model.User]
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{crud[model.User, *model.User]{db: db}}
}

// Create 创建用户，用户名重复时返回冲突错误
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	if err := r.create(ctx, user); err != nil {
		if isUniqueViolation(err) {
			return apperr.Conflict("User with username %q already exists", user.Username)
		}
		return err
	}
	return nil
}

// FindByID 根据 ID 查找用户
func (r *UserRepository) FindByID(ctx context.Context, id int) (*model.User, error) {
	return r.findByID(ctx, id)
}

// FindByUsername 根据用户名查找用户
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Exists(ctx context.Context, id int) (bool, error) {
	return r.exists(ctx, id)
}

// List 分页获取用户
func (r *UserRepository) List(ctx context.Context, p model.Pageable) ([]model.User, int64, error) {
	return r.findPage(ctx, p, nil)
}

// Update 更新用户
func (r *UserRepository) Update(ctx context.Context, user *model.User, expectedVersion int64) error {
	if err := r.update(ctx, user, expectedVersion); err != nil {
		if isUniqueViolation(err) {
			return apperr.Conflict("User with username %q already exists", user.Username)
		}
		return err
	}
	return nil
}

// Delete 删除用户及其观影记录
func (r *UserRepository) Delete(ctx context.Context, id int) (bool, error) {
	return r.delete(ctx, id, "WatchedMovies")
}
