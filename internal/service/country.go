package service

import (
	"context"

	"github.com/hashicorp/go-hclog"
	"github.com/user/cinema/internal/apperr"
	"github.com/user/cinema/internal/dto"
	"github.com/user/cinema/internal/model"
	"github.com/user/cinema/internal/repository"
)

// CountryService 国家
type CountryService struct {
	repos *repository.Repositories
	cache *refCache[dto.CountryResponse]
	log   hclog.Logger
}

func NewCountryService(repos *repository.Repositories, cache *refCache[dto.CountryResponse], log hclog.Logger) *CountryService {
	return &CountryService{repos: repos, cache: cache, log: log}
}

func (s *CountryService) Create(ctx context.Context, req *dto.CountryRequest) (*dto.CountryResponse, error) {
	var out dto.CountryResponse
	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		country := req.ToEntity()
		if err := tx.Country.Create(ctx, country); err != nil {
			return err
		}
		out = dto.ToCountryResponse(country)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Debug("国家已创建", "id", out.ID)
	return &out, nil
}

// Get 读缓存，未命中再查库
func (s *CountryService) Get(ctx context.Context, id int) (*dto.CountryResponse, error) {
	out, err := s.cache.get(ctx, id, func(ctx context.Context) (dto.CountryResponse, error) {
		country, err := s.repos.Country.FindByID(ctx, id)
		if err != nil {
			return dto.CountryResponse{}, err
		}
		if country == nil {
			return dto.CountryResponse{}, apperr.NotFound("Country", id)
		}
		return dto.ToCountryResponse(country), nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *CountryService) List(ctx context.Context, p model.Pageable) (*dto.Page[dto.CountryResponse], error) {
	countries, total, err := s.repos.Country.List(ctx, p)
	if err != nil {
		return nil, err
	}
	page := dto.NewPage(countries, p, total, dto.ToCountryResponse)
	return &page, nil
}

func (s *CountryService) Update(ctx context.Context, id int, req *dto.CountryUpdateRequest) (*dto.CountryResponse, error) {
	var out dto.CountryResponse
	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		country, err := tx.Country.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if country == nil {
			return apperr.NotFound("Country", id)
		}

		expected := expectedVersion(req.Version, country.Version)
		req.ApplyTo(country)
		if err := tx.Country.Update(ctx, country, expected); err != nil {
			return versionConflict("Country", id, expected, err)
		}
		out = dto.ToCountryResponse(country)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.cache.invalidate(id)
	return &out, nil
}

func (s *CountryService) Delete(ctx context.Context, id int) error {
	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		exists, err := tx.Country.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return apperr.NotFound("Country", id)
		}
		_, err = tx.Country.Delete(ctx, id)
		return err
	})
	if err != nil {
		return err
	}
	s.cache.invalidate(id)
	s.log.Debug("国家已删除", "id", id)
	return nil
}
