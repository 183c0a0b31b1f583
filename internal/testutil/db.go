// Package testutil 提供测试用的内存数据库。
package testutil

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	"github.com/user/cinema/internal/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// NewDB 为每个测试创建独立的内存 sqlite 并完成迁移
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), repository.GormConfig(hclog.NewNullLogger()))
	if err != nil {
		t.Fatalf("打开测试数据库失败: %v", err)
	}
	if err := repository.Migrate(db); err != nil {
		t.Fatalf("迁移测试数据库失败: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("获取连接失败: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})
	return db
}
