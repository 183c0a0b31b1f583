package model

import (
	"time"

	"gorm.io/gorm"
)

// Model 所有实体的公共字段
type Model struct {
	ID        int       `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
	// Version 乐观锁版本号，每次更新 +1
	Version int64 `json:"version" gorm:"not null;default:1"`
}

// BeforeCreate 新建实体从版本 1 开始
func (m *Model) BeforeCreate(tx *gorm.DB) error {
	if m.Version == 0 {
		m.Version = 1
	}
	return nil
}

// Base 返回公共字段
func (m *Model) Base() *Model {
	return m
}

// All 需要迁移的全部实体
func All() []interface{} {
	return []interface{}{
		&Country{},
		&Genre{},
		&User{},
		&Movie{},
		&WatchedMovie{},
	}
}

// Country 国家
type Country struct {
	Model
	Name   string  `json:"name" gorm:"size:100;not null"`
	Movies []Movie `json:"-" gorm:"many2many:movie_countries"`
}

// Genre 类型
type Genre struct {
	Model
	Name   string  `json:"name" gorm:"size:50;not null"`
	Movies []Movie `json:"-" gorm:"many2many:movie_genres"`
}

// WatchedMovie 观影记录
type WatchedMovie struct {
	Model
	UserID    int       `json:"user_id" gorm:"not null;index"`
	User      *User     `json:"-"`
	MovieID   int       `json:"movie_id" gorm:"not null;index"`
	Movie     *Movie    `json:"-"`
	WatchedAt time.Time `json:"watched_at" gorm:"not null"`
}
