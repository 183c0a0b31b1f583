package service

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/user/cinema/internal/apperr"
	"github.com/user/cinema/internal/config"
	"github.com/user/cinema/internal/dto"
	"github.com/user/cinema/internal/repository"
)

// Services 服务集合
type Services struct {
	Country      *CountryService
	Genre        *GenreService
	User         *UserService
	Movie        *MovieService
	WatchedMovie *WatchedMovieService
}

// NewServices 创建服务集合
func NewServices(repos *repository.Repositories, cacheCfg config.CacheConfig, log hclog.Logger) (*Services, error) {
	countries, err := newRefCache[dto.CountryResponse](cacheCfg)
	if err != nil {
		return nil, fmt.Errorf("国家缓存初始化失败: %w", err)
	}
	genres, err := newRefCache[dto.GenreResponse](cacheCfg)
	if err != nil {
		return nil, fmt.Errorf("类型缓存初始化失败: %w", err)
	}

	return &Services{
		Country:      NewCountryService(repos, countries, log.Named("country")),
		Genre:        NewGenreService(repos, genres, log.Named("genre")),
		User:         NewUserService(repos, log.Named("user")),
		Movie:        NewMovieService(repos, log.Named("movie")),
		WatchedMovie: NewWatchedMovieService(repos, log.Named("watched_movie")),
	}, nil
}

// expectedVersion 请求未携带版本号时以当前存储的版本为准
func expectedVersion(requested *int64, stored int64) int64 {
	if requested != nil {
		return *requested
	}
	return stored
}

// versionConflict 把乐观锁失败转换为 409
func versionConflict(resource string, id int, expected int64, err error) error {
	if errors.Is(err, repository.ErrStaleVersion) {
		return apperr.Conflict("%s with id %d was modified concurrently (expected version %d)", resource, id, expected)
	}
	return err
}
