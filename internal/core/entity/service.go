// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package entity

import (
	"context"

	"github.com/taibuivan/epicdb/internal/platform/validate"
	"github.com/taibuivan/epicdb/pkg/pagination"
)

// Service exposes the combined character listing.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListAll pages through every hero and villain by name.
func (service *Service) ListAll(context context.Context, filter Filter, params pagination.Params) ([]*AllEntity, int, error) {
	if filter.Kind != "" {
		validator := &validate.Validator{}
		validator.OneOf("kind", string(filter.Kind), string(KindHero), string(KindVillain))
		if err := validator.Err(); err != nil {
			return nil, 0, err
		}
	}
	return service.repo.ListAll(context, filter, params.Limit, params.Offset())
}
