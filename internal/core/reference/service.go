// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reference

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taibuivan/epicdb/internal/platform/cache"
	"github.com/taibuivan/epicdb/internal/platform/constants"
	"github.com/taibuivan/epicdb/internal/platform/dberr"
	"github.com/taibuivan/epicdb/internal/platform/validate"
	"github.com/taibuivan/epicdb/pkg/pagination"
)

// # Service Layer

// Service orchestrates business rules for categories and origins.
//
// List pages are served through a read-through Redis cache; every write
// drops the cached pages of the affected table.
type Service struct {
	repo   Repository
	cache  *cache.Cache
	logger *slog.Logger
}

// NewService constructs a new reference [Service]. A nil cache disables caching.
func NewService(repo Repository, cache *cache.Cache, logger *slog.Logger) *Service {
	return &Service{repo: repo, cache: cache, logger: logger}
}

// page is the cached shape of a list result.
type page[T any] struct {
	Items []*T `json:"items"`
	Total int  `json:"total"`
}

func pageKey(prefix string, params pagination.Params) string {
	return fmt.Sprintf("%s%d:%d", prefix, params.Page, params.Limit)
}

func validateName(name string) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, name).MaxLen(FieldName, name, MaxNameLength)
	return validator.Err()
}

// # Category Methods

/*
ListCategories returns one page of categories ordered by name.

Returns:
  - []*Category: The page
  - int: Total number of categories
  - error: Storage failures (cache failures are only logged)
*/
func (service *Service) ListCategories(context context.Context, params pagination.Params) ([]*Category, int, error) {
	result, err := cache.Remember(context, service.cache, pageKey(constants.RedisPrefixCategoryList, params),
		func() (page[Category], error) {
			items, total, err := service.repo.ListCategories(context, params.Limit, params.Offset())
			return page[Category]{Items: items, Total: total}, err
		})
	if err != nil {
		return nil, 0, err
	}
	return result.Items, result.Total, nil
}

// GetCategory retrieves a category by ID.
func (service *Service) GetCategory(context context.Context, id int) (*Category, error) {
	category, err := service.repo.GetCategory(context, id)
	if err != nil {
		return nil, dberr.NotFound(err, "Category")
	}
	return category, nil
}

// CreateCategory validates and persists a new category.
func (service *Service) CreateCategory(context context.Context, category *Category) error {
	if err := validateName(category.Name); err != nil {
		return err
	}

	if err := service.repo.CreateCategory(context, category); err != nil {
		return err
	}

	service.cache.InvalidatePrefix(context, constants.RedisPrefixCategoryList)
	service.logger.InfoContext(context, "category_created", slog.Int("category_id", category.ID))
	return nil
}

// UpdateCategory renames the category identified by id.
func (service *Service) UpdateCategory(context context.Context, id int, category *Category) error {
	category.ID = id
	if err := validateName(category.Name); err != nil {
		return err
	}

	if err := service.repo.UpdateCategory(context, category); err != nil {
		return dberr.NotFound(err, "Category")
	}

	service.cache.InvalidatePrefix(context, constants.RedisPrefixCategoryList)
	service.logger.InfoContext(context, "category_updated", slog.Int("category_id", id))
	return nil
}

// DeleteCategory removes a category and, through the schema, its characters.
func (service *Service) DeleteCategory(context context.Context, id int) error {
	if err := service.repo.DeleteCategory(context, id); err != nil {
		return dberr.NotFound(err, "Category")
	}

	service.cache.InvalidatePrefix(context, constants.RedisPrefixCategoryList)
	service.logger.WarnContext(context, "category_deleted", slog.Int("category_id", id))
	return nil
}

// # Origin Methods

// ListOrigins returns one page of origins ordered by name.
func (service *Service) ListOrigins(context context.Context, params pagination.Params) ([]*Origin, int, error) {
	result, err := cache.Remember(context, service.cache, pageKey(constants.RedisPrefixOriginList, params),
		func() (page[Origin], error) {
			items, total, err := service.repo.ListOrigins(context, params.Limit, params.Offset())
			return page[Origin]{Items: items, Total: total}, err
		})
	if err != nil {
		return nil, 0, err
	}
	return result.Items, result.Total, nil
}

func (service *Service) GetOrigin(context context.Context, id int) (*Origin, error) {
	origin, err := service.repo.GetOrigin(context, id)
	if err != nil {
		return nil, dberr.NotFound(err, "Origin")
	}
	return origin, nil
}

func (service *Service) CreateOrigin(context context.Context, origin *Origin) error {
	if err := validateName(origin.Name); err != nil {
		return err
	}

	if err := service.repo.CreateOrigin(context, origin); err != nil {
		return err
	}

	service.cache.InvalidatePrefix(context, constants.RedisPrefixOriginList)
	service.logger.InfoContext(context, "origin_created", slog.Int("origin_id", origin.ID))
	return nil
}

func (service *Service) UpdateOrigin(context context.Context, id int, origin *Origin) error {
	origin.ID = id
	if err := validateName(origin.Name); err != nil {
		return err
	}

	if err := service.repo.UpdateOrigin(context, origin); err != nil {
		return dberr.NotFound(err, "Origin")
	}

	service.cache.InvalidatePrefix(context, constants.RedisPrefixOriginList)
	service.logger.InfoContext(context, "origin_updated", slog.Int("origin_id", id))
	return nil
}

func (service *Service) DeleteOrigin(context context.Context, id int) error {
	if err := service.repo.DeleteOrigin(context, id); err != nil {
		return dberr.NotFound(err, "Origin")
	}

	service.cache.InvalidatePrefix(context, constants.RedisPrefixOriginList)
	service.logger.WarnContext(context, "origin_deleted", slog.Int("origin_id", id))
	return nil
}
