package model

// User 用户模型
type User struct {
	Model
	Username      string         `json:"username" gorm:"size:50;not null;uniqueIndex"`
	WatchedMovies []WatchedMovie `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}
