package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata" // 确保在精简镜像中也能识别时区

	"github.com/joho/godotenv"
	"github.com/user/cinema/internal/config"
	"github.com/user/cinema/internal/handler"
	"github.com/user/cinema/internal/logger"
	"github.com/user/cinema/internal/repository"
	"github.com/user/cinema/internal/router"
)

func main() {
	// 加载环境变量
	envErr := godotenv.Load()

	// 加载配置
	cfg, err := config.Load()
	if err != nil {
		logger.New("cinema", "error", false).Error("配置加载失败", "error", err)
		os.Exit(1)
	}

	log := logger.New("cinema", cfg.Log.Level, cfg.Log.JSON)
	if envErr != nil {
		log.Debug("未找到 .env 文件，使用系统环境变量")
	}

	// 初始化数据库
	db, err := repository.InitDB(cfg.Database, cfg.DatabaseURL(), log.Named("db"))
	if err != nil {
		log.Error("数据库连接失败", "error", err)
		os.Exit(1)
	}

	sqlDB, _ := db.DB()
	defer sqlDB.Close()

	// 初始化仓库
	repos := repository.NewRepositories(db)

	// 初始化 Handler
	h, err := handler.NewHandler(repos, cfg, log)
	if err != nil {
		log.Error("初始化失败", "error", err)
		os.Exit(1)
	}

	r := router.New(h, log)

	srv := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	// 在 goroutine 中启动服务器，这样我们就可以监听信号
	go func() {
		log.Info("服务器启动", "addr", "http://localhost:"+cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("服务器启动失败", "error", err)
			os.Exit(1)
		}
	}()

	// 等待中断信号以优雅地关闭服务器
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("正在关闭服务器...")

	// 5 秒超时上下文用于关闭过程
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("服务器强制关闭", "error", err)
	}

	log.Info("服务器已退出")
}
