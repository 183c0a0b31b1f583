package router

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/hashicorp/go-hclog"
	"github.com/user/cinema/internal/handler"
	"github.com/user/cinema/internal/middleware"
)

// New 创建 gin 引擎并挂载中间件与路由
func New(h *handler.Handler, log hclog.Logger) *gin.Engine {
	if h.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())

	// 启用 gzip，默认压缩级别
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	// 中间件
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log.Named("http")))
	r.Use(middleware.Security())
	r.Use(middleware.CORS(h.Config.CORSOrigins))
	r.Use(middleware.ErrorHandler(log.Named("http")))

	RegisterRoutes(r, h)
	return r
}

// RegisterRoutes 注册所有路由
func RegisterRoutes(r *gin.Engine, h *handler.Handler) {
	// 健康检查
	r.GET("/health", h.Health)

	api := r.Group("/api/v1")

	countries := api.Group("/countries")
	{
		countries.POST("", h.CreateCountry)
		countries.GET("", h.ListCountries)
		countries.GET("/:id", h.GetCountry)
		countries.PUT("/:id", h.UpdateCountry)
		countries.DELETE("/:id", h.DeleteCountry)
	}

	genres := api.Group("/genres")
	{
		genres.POST("", h.CreateGenre)
		genres.GET("", h.ListGenres)
		genres.GET("/:id", h.GetGenre)
		genres.PUT("/:id", h.UpdateGenre)
		genres.DELETE("/:id", h.DeleteGenre)
	}

	movies := api.Group("/movies")
	{
		movies.POST("", h.CreateMovie)
		movies.GET("", h.ListMovies)
		movies.GET("/:id", h.GetMovie)
		movies.PUT("/:id", h.UpdateMovie)
		movies.DELETE("/:id", h.DeleteMovie)
	}

	users := api.Group("/users")
	{
		users.POST("", h.CreateUser)
		users.GET("", h.ListUsers)
		users.GET("/:id", h.GetUser)
		users.PUT("/:id", h.UpdateUser)
		users.DELETE("/:id", h.DeleteUser)
		users.GET("/:id/watched-movies", h.UserWatchedMovies)
	}

	watched := api.Group("/watched-movies")
	{
		watched.POST("", h.CreateWatchedMovie)
		watched.GET("", h.ListWatchedMovies)
		watched.GET("/:id", h.GetWatchedMovie)
		watched.PUT("/:id", h.UpdateWatchedMovie)
		watched.DELETE("/:id", h.DeleteWatchedMovie)
	}
}
