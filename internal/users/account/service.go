// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/epicdb/internal/platform/apperr"
	"github.com/taibuivan/epicdb/internal/platform/ctxutil"
	"github.com/taibuivan/epicdb/internal/platform/dberr"
	"github.com/taibuivan/epicdb/internal/platform/sec"
	"github.com/taibuivan/epicdb/internal/platform/validate"
	"github.com/taibuivan/epicdb/internal/users/auth"
)

// Service implements profile use cases.
type Service struct {
	repository AccountRepository
	logger     *slog.Logger
}

func NewService(repository AccountRepository, logger *slog.Logger) *Service {
	return &Service{repository: repository, logger: logger}
}

// GetUser returns the public profile of account id.
func (service *Service) GetUser(context context.Context, id string) (*auth.User, error) {
	user, err := service.repository.FindByID(context, id)
	if err != nil {
		return nil, dberr.NotFound(err, "User")
	}
	return user, nil
}

func (service *Service) GetParent(context context.Context, userID string) (*Parent, error) {
	parent, err := service.repository.GetParent(context, userID)
	if err != nil {
		return nil, dberr.NotFound(err, "Parent")
	}
	return parent, nil
}

/*
SetParent creates or replaces the parent record of userID.

Returns:
  - FORBIDDEN unless the caller owns the account or is an admin
  - NOT_FOUND if the account does not exist
*/
func (service *Service) SetParent(context context.Context, userID string, input ParentInput) (*Parent, error) {
	claims := ctxutil.GetAuthUser(context)
	if claims == nil {
		return nil, apperr.Unauthorized("Authentication required")
	}
	if claims.UserID != userID && !sec.UserRole(claims.Role).AtLeast(sec.RoleAdmin) {
		return nil, apperr.Forbidden("Cannot modify another user's parent record")
	}

	parent := &Parent{
		UserID:     userID,
		FatherName: strings.TrimSpace(input.FatherName),
		MotherName: strings.TrimSpace(input.MotherName),
	}

	validator := &validate.Validator{}
	validator.
		Required(FieldFatherName, parent.FatherName).
		MaxLen(FieldFatherName, parent.FatherName, MaxParentNameLength).
		Required(FieldMotherName, parent.MotherName).
		MaxLen(FieldMotherName, parent.MotherName, MaxParentNameLength)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.repository.UpsertParent(context, parent); err != nil {
		if apperr.HasCode(err, apperr.CodeUnprocessable) {
			return nil, apperr.NotFound("User").WithCause(err)
		}
		return nil, err
	}

	service.logger.InfoContext(context, "parent_saved", slog.String("user_id", userID))
	return parent, nil
}
