package dto

import (
	"time"

	"github.com/user/cinema/internal/model"
)

// UserRequest 新建用户
type UserRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50,username"`
}

// UserUpdateRequest 部分更新用户
type UserUpdateRequest struct {
	Username *string `json:"username" binding:"omitempty,min=3,max=50,username"`
	Version  *int64  `json:"version" binding:"omitempty,gte=1"`
}

type UserResponse struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Version   int64     `json:"version"`
}

func (r *UserRequest) ToEntity() *model.User {
	return &model.User{Username: r.Username}
}

func (r *UserUpdateRequest) ApplyTo(u *model.User) {
	if r.Username != nil {
		u.Username = *r.Username
	}
}

func ToUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
		Version:   u.Version,
	}
}
