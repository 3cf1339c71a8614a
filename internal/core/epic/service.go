// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package epic

import (
	"context"
	"log/slog"
	"slices"
	"strings"

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

func (service *Service) ListEpics(context context.Context, name string, params pagination.Params) ([]*Epic, int, error) {
	return service.repo.ListEpics(context, name, params.Limit, params.Offset())
}

func (service *Service) GetEpic(context context.Context, id int) (*Epic, error) {
	epic, err := service.repo.GetEpic(context, id)
	if err != nil {
		return nil, dberr.NotFound(err, "Epic")
	}
	return epic, nil
}

/*
CreateEpic stores a new epic and its initial participants in one transaction.

Returns UNPROCESSABLE if any hero or villain id does not exist.
*/
func (service *Service) CreateEpic(context context.Context, input Input) (*Epic, error) {
	epic := &Epic{
		Name:       strings.TrimSpace(input.Name),
		HeroIDs:    uniqueIDs(input.HeroIDs),
		VillainIDs: uniqueIDs(input.VillainIDs),
	}

	validator := validateName(epic.Name)
	for _, id := range epic.HeroIDs {
		validator.ID(FieldHeroIDs, id)
	}
	for _, id := range epic.VillainIDs {
		validator.ID(FieldVillainIDs, id)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.repo.CreateEpic(context, epic); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "epic_created", slog.Int("epic_id", epic.ID), slog.String("name", epic.Name))
	return epic, nil
}

// UpdateEpic renames epic id and returns it with its current participants.
func (service *Service) UpdateEpic(context context.Context, id int, input Input) (*Epic, error) {
	epic := &Epic{ID: id, Name: strings.TrimSpace(input.Name)}
	if err := validateName(epic.Name).Err(); err != nil {
		return nil, err
	}

	if err := service.repo.UpdateEpic(context, epic); err != nil {
		return nil, dberr.NotFound(err, "Epic")
	}

	service.logger.InfoContext(context, "epic_updated", slog.Int("epic_id", id))
	return service.GetEpic(context, id)
}

func (service *Service) DeleteEpic(context context.Context, id int) error {
	if err := service.repo.DeleteEpic(context, id); err != nil {
		return dberr.NotFound(err, "Epic")
	}

	service.logger.WarnContext(context, "epic_deleted", slog.Int("epic_id", id))
	return nil
}

// AddParticipant links a hero or villain to epic id.
func (service *Service) AddParticipant(context context.Context, epicID int, role Role, otherID int) error {
	if otherID <= 0 {
		return validate.FieldError("other_id", "Must reference an existing record")
	}

	if err := service.repo.AddParticipant(context, epicID, role, otherID); err != nil {
		return err
	}

	service.logger.InfoContext(context, "epic_participant_added",
		slog.Int("epic_id", epicID), slog.String("role", string(role)), slog.Int("other_id", otherID))
	return nil
}

func (service *Service) RemoveParticipant(context context.Context, epicID int, role Role, otherID int) error {
	if err := service.repo.RemoveParticipant(context, epicID, role, otherID); err != nil {
		return dberr.NotFound(err, "Epic participant")
	}

	service.logger.InfoContext(context, "epic_participant_removed",
		slog.Int("epic_id", epicID), slog.String("role", string(role)), slog.Int("other_id", otherID))
	return nil
}

func validateName(name string) *validate.Validator {
	validator := &validate.Validator{}
	return validator.Required(FieldName, name).MaxLen(FieldName, name, MaxNameLength)
}

// uniqueIDs returns ids sorted without duplicates.
func uniqueIDs(ids []int) []int {
	out := append([]int{}, ids...)
	slices.Sort(out)
	return slices.Compact(out)
}
