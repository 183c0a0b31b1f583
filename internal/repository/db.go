package repository

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	_ "github.com/lib/pq"
	"github.com/user/cinema/internal/config"
	"github.com/user/cinema/internal/logger"
	"github.com/user/cinema/internal/model"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// GormConfig gorm 公共配置
func GormConfig(log hclog.Logger) *gorm.Config {
	return &gorm.Config{
		Logger:         logger.NewGormLogger(log).WithExpected(isUniqueViolation),
		TranslateError: true,
	}
}

// InitDB 初始化数据库连接
func InitDB(cfg config.DatabaseConfig, dsn string, log hclog.Logger) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	switch cfg.Driver {
	case "postgres":
		db, err = openPostgres(cfg, dsn, log)
	case "sqlite":
		db, err = openSQLite(cfg, log)
	default:
		return nil, fmt.Errorf("不支持的数据库驱动: %s", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	if cfg.AutoMigrate {
		if err := Migrate(db); err != nil {
			return nil, err
		}
	}

	log.Info("数据库已连接", "driver", cfg.Driver)
	return db, nil
}

// openPostgres 通过 lib/pq 建立连接，再交给 gorm 的 postgres 方言
func openPostgres(cfg config.DatabaseConfig, dsn string, log hclog.Logger) (*gorm.DB, error) {
	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("无法连接数据库: %w", err)
	}

	// 测试连接
	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("数据库 ping 失败: %w", err)
	}

	// 设置连接池
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), GormConfig(log))
	if err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("gorm 初始化失败: %w", err)
	}
	return db, nil
}

func openSQLite(cfg config.DatabaseConfig, log hclog.Logger) (*gorm.DB, error) {
	if dir := filepath.Dir(cfg.SQLitePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("创建数据目录失败: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(cfg.SQLitePath), GormConfig(log))
	if err != nil {
		return nil, fmt.Errorf("无法打开 sqlite: %w", err)
	}

	// sqlite 只允许单写者
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	return db, nil
}

// Migrate 自动迁移所有表
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(model.All()...); err != nil {
		return fmt.Errorf("数据库迁移失败: %w", err)
	}
	return nil
}

// Repositories 仓库集合
type Repositories struct {
	DB           *gorm.DB
	Country      *CountryRepository
	Genre        *GenreRepository
	User         *UserRepository
	Movie        *MovieRepository
	WatchedMovie *WatchedMovieRepository
}

// NewRepositories 创建仓库集合
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		DB:           db,
		Country:      NewCountryRepository(db),
		Genre:        NewGenreRepository(db),
		User:         NewUserRepository(db),
		Movie:        NewMovieRepository(db),
		WatchedMovie: NewWatchedMovieRepository(db),
	}
}

// Transaction 在一个读写事务中执行 fn，fn 返回错误或 panic 时回滚
func (r *Repositories) Transaction(ctx context.Context, fn func(tx *Repositories) error) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}

// Ping 检查数据库连通性
func (r *Repositories) Ping(ctx context.Context) error {
	sqlDB, err := r.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
