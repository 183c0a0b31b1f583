package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-hclog"
	"github.com/user/cinema/internal/apperr"
	"github.com/user/cinema/internal/config"
	"github.com/user/cinema/internal/dto"
	"github.com/user/cinema/internal/repository"
	"github.com/user/cinema/internal/service"
)

// Handler HTTP 处理器
type Handler struct {
	Repos    *repository.Repositories
	Services *service.Services
	Config   *config.Config
	Log      hclog.Logger
}

// NewHandler 创建处理器
func NewHandler(repos *repository.Repositories, cfg *config.Config, log hclog.Logger) (*Handler, error) {
	if err := SetupValidator(); err != nil {
		return nil, err
	}

	services, err := service.NewServices(repos, cfg.Cache, log.Named("service"))
	if err != nil {
		return nil, err
	}

	return &Handler{
		Repos:    repos,
		Services: services,
		Config:   cfg,
		Log:      log,
	}, nil
}

// SetupValidator 让 gin 的校验器使用 JSON 字段名并注册自定义规则
func SetupValidator() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin 校验器不是 validator/v10")
	}
	return dto.RegisterValidations(v)
}

// Health 健康检查，同时检查数据库
func (h *Handler) Health(c *gin.Context) {
	if err := h.Repos.Ping(c.Request.Context()); err != nil {
		h.Log.Warn("数据库不可用", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "down"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// pathID 解析路径中的 :id，必须是正整数
func pathID(c *gin.Context) (int, error) {
	raw := c.Param("id")
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, apperr.Invalid("id", "must be a positive integer, got "+strconv.Quote(raw))
	}
	return id, nil
}

// bindJSON 解析并校验请求体
func bindJSON(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		return dto.BindError(err)
	}
	return nil
}
