package service

import (
	"context"

	"github.com/hashicorp/go-hclog"
	"github.com/user/cinema/internal/apperr"
	"github.com/user/cinema/internal/dto"
	"github.com/user/cinema/internal/model"
	"github.com/user/cinema/internal/repository"
)

// UserService 用户
type UserService struct {
	repos *repository.Repositories
	log   hclog.Logger
}

func NewUserService(repos *repository.Repositories, log hclog.Logger) *UserService {
	return &UserService{repos: repos, log: log}
}

// Create 用户名重复时由仓库返回 409
func (s *UserService) Create(ctx context.Context, req *dto.UserRequest) (*dto.UserResponse, error) {
	var out dto.UserResponse
	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		user := req.ToEntity()
		if err := tx.User.Create(ctx, user); err != nil {
			return err
		}
		out = dto.ToUserResponse(user)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("用户已创建", "id", out.ID, "username", out.Username)
	return &out, nil
}

func (s *UserService) Get(ctx context.Context, id int) (*dto.UserResponse, error) {
	user, err := s.repos.User.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("User", id)
	}
	out := dto.ToUserResponse(user)
	return &out, nil
}

func (s *UserService) List(ctx context.Context, p model.Pageable) (*dto.Page[dto.UserResponse], error) {
	users, total, err := s.repos.User.List(ctx, p)
	if err != nil {
		return nil, err
	}
	page := dto.NewPage(users, p, total, dto.ToUserResponse)
	return &page, nil
}

func (s *UserService) Update(ctx context.Context, id int, req *dto.UserUpdateRequest) (*dto.UserResponse, error) {
	var out dto.UserResponse
	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		user, err := tx.User.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if user == nil {
			return apperr.NotFound("User", id)
		}

		expected := expectedVersion(req.Version, user.Version)
		req.ApplyTo(user)
		if err := tx.User.Update(ctx, user, expected); err != nil {
			return versionConflict("User", id, expected, err)
		}
		out = dto.ToUserResponse(user)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete 删除用户及其观影记录
func (s *UserService) Delete(ctx context.Context, id int) error {
	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		exists, err := tx.User.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return apperr.NotFound("User", id)
		}
		_, err = tx.User.Delete(ctx, id)
		return err
	})
	if err != nil {
		return err
	}
	s.log.Info("用户已删除", "id", id)
	return nil
}
