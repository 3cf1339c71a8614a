// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package legacy

import (
	"context"
	"log/slog"

	"github.com/taibuivan/epicdb/internal/platform/dberr"
	"github.com/taibuivan/epicdb/internal/platform/validate"
	"github.com/taibuivan/epicdb/pkg/pagination"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (service *Service) ListTempUsers(context context.Context, params pagination.Params) ([]*TempUser, int, error) {
	return service.repo.ListTempUsers(context, params.Limit, params.Offset())
}

func (service *Service) ListColumnNames(context context.Context, params pagination.Params) ([]*ColumnName, int, error) {
	return service.repo.ListColumnNames(context, params.Limit, params.Offset())
}

func (service *Service) GetColumnName(context context.Context, id int) (*ColumnName, error) {
	c, err := service.repo.GetColumnName(context, id)
	if err != nil {
		return nil, dberr.NotFound(err, "Column name")
	}
	return c, nil
}

func (service *Service) CreateColumnName(context context.Context, input ColumnNameInput) (*ColumnName, error) {
	validator := &validate.Validator{}
	validator.
		Required(FieldA, input.A).
		MaxLen(FieldA, input.A, MaxALength).
		Required(FieldColumn2, input.Column2).
		MaxLen(FieldColumn2, input.Column2, MaxColumn2Length)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	c := &ColumnName{A: input.A, Column2: input.Column2}
	if err := service.repo.CreateColumnName(context, c); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "column_name_created", slog.Int("column_name_id", c.ID))
	return c, nil
}

func (service *Service) DeleteColumnName(context context.Context, id int) error {
	if err := service.repo.DeleteColumnName(context, id); err != nil {
		return dberr.NotFound(err, "Column name")
	}

	service.logger.WarnContext(context, "column_name_deleted", slog.Int("column_name_id", id))
	return nil
}
