// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package villain

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/taibuivan/epicdb/internal/core/entity"
	"github.com/taibuivan/epicdb/internal/platform/ctxutil"
	"github.com/taibuivan/epicdb/internal/platform/dberr"
	"github.com/taibuivan/epicdb/internal/platform/validate"
	"github.com/taibuivan/epicdb/pkg/pagination"
	"github.com/taibuivan/epicdb/pkg/pointer"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
	now    func() time.Time
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger, now: time.Now}
}

func (service *Service) ListVillains(context context.Context, filter Filter, params pagination.Params) ([]*Villain, int, error) {
	return service.repo.ListVillains(context, filter, params.Limit, params.Offset())
}

func (service *Service) GetVillain(context context.Context, id int) (*Villain, error) {
	villain, err := service.repo.GetVillain(context, id)
	if err != nil {
		return nil, dberr.NotFound(err, "Villain")
	}
	return villain, nil
}

/*
CreateVillain validates input and persists a new villain.

The save date is always today and the author is the authenticated user,
when there is one.
*/
func (service *Service) CreateVillain(context context.Context, input Input) (*Villain, error) {
	villain, err := service.build(context, 0, input)
	if err != nil {
		return nil, err
	}

	if err := service.repo.CreateVillain(context, villain); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "villain_created", slog.Int("villain_id", villain.ID), slog.String("name", villain.Name))
	return villain, nil
}

// UpdateVillain replaces villain id and refreshes its save date.
func (service *Service) UpdateVillain(context context.Context, id int, input Input) (*Villain, error) {
	villain, err := service.build(context, id, input)
	if err != nil {
		return nil, err
	}

	if err := service.repo.UpdateVillain(context, villain); err != nil {
		return nil, dberr.NotFound(err, "Villain")
	}

	service.logger.InfoContext(context, "villain_updated", slog.Int("villain_id", id))
	return villain, nil
}

func (service *Service) DeleteVillain(context context.Context, id int) error {
	if err := service.repo.DeleteVillain(context, id); err != nil {
		return dberr.NotFound(err, "Villain")
	}

	service.logger.WarnContext(context, "villain_deleted", slog.Int("villain_id", id))
	return nil
}

func (service *Service) build(context context.Context, id int, input Input) (*Villain, error) {
	villain := &Villain{
		ID: id,
		Entity: entity.Entity{
			Name:            strings.TrimSpace(input.Name),
			AlternativeName: input.AlternativeName,
			CategoryID:      input.CategoryID,
			OriginID:        input.OriginID,
			Gender:          input.Gender,
			Description:     input.Description,
		},
		IsImmortal:        pointer.Fallback(input.IsImmortal, DefaultIsImmortal),
		MalevolenceFactor: pointer.Val(input.MalevolenceFactor),
		PowerFactor:       pointer.Val(input.PowerFactor),
		IsUnique:          pointer.Fallback(input.IsUnique, DefaultIsUnique),
		Count:             pointer.Fallback(input.Count, DefaultCount),
	}

	validator := villain.Entity.Validate(&validate.Validator{})
	validator.
		Custom(FieldMalevolenceFactor, input.MalevolenceFactor == nil, "This field is required").
		Custom(FieldPowerFactor, input.PowerFactor == nil, "This field is required").
		SmallUint(FieldMalevolenceFactor, villain.MalevolenceFactor).
		SmallUint(FieldPowerFactor, villain.PowerFactor).
		SmallUint(FieldCount, villain.Count)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	villain.Touch(service.now(), ctxutil.GetUserID(context))
	return villain, nil
}
