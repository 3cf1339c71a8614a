// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package hero

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/epicdb/internal/platform/apperr"
	"github.com/taibuivan/epicdb/internal/platform/dberr"
	"github.com/taibuivan/epicdb/internal/platform/validate"
	"github.com/taibuivan/epicdb/pkg/pagination"
	"github.com/taibuivan/epicdb/pkg/pointer"
)

// Service orchestrates business rules for heroes and their acquaintances.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// # Heroes

func (service *Service) ListHeroes(context context.Context, filter Filter, params pagination.Params) ([]*Hero, int, error) {
	return service.repo.ListHeroes(context, filter, params.Limit, params.Offset())
}

func (service *Service) GetHero(context context.Context, id int) (*Hero, error) {
	hero, err := service.repo.GetHero(context, id)
	if err != nil {
		return nil, dberr.NotFound(err, "Hero")
	}
	return hero, nil
}

/*
CreateHero validates input, applies column defaults and persists a new hero.

Returns:
  - *Hero: The stored hero with its generated ID
  - error: VALIDATION_ERROR, or UNPROCESSABLE when a referenced category or
    relative does not exist
*/
func (service *Service) CreateHero(context context.Context, input Input) (*Hero, error) {
	hero := fromInput(0, input)
	if err := validateHero(hero); err != nil {
		return nil, err
	}

	if err := service.repo.CreateHero(context, hero); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "hero_created", slog.Int("hero_id", hero.ID), slog.String("name", hero.Name))
	return hero, nil
}

// UpdateHero replaces every field of hero id. Omitted optional fields reset
// to their defaults.
func (service *Service) UpdateHero(context context.Context, id int, input Input) (*Hero, error) {
	hero := fromInput(id, input)
	if err := validateHero(hero); err != nil {
		return nil, err
	}

	if err := service.repo.UpdateHero(context, hero); err != nil {
		return nil, dberr.NotFound(err, "Hero")
	}

	service.logger.InfoContext(context, "hero_updated", slog.Int("hero_id", id))
	return hero, nil
}

func (service *Service) DeleteHero(context context.Context, id int) error {
	if err := service.repo.DeleteHero(context, id); err != nil {
		return dberr.NotFound(err, "Hero")
	}

	service.logger.WarnContext(context, "hero_deleted", slog.Int("hero_id", id))
	return nil
}

// Children lists the heroes fathered by hero id.
func (service *Service) Children(context context.Context, id int) ([]*Hero, error) {
	if _, err := service.GetHero(context, id); err != nil {
		return nil, err
	}
	return service.repo.ListChildren(context, id)
}

func fromInput(id int, input Input) *Hero {
	return &Hero{
		ID:                  id,
		Name:                strings.TrimSpace(input.Name),
		CategoryID:          input.CategoryID,
		IsImmortal:          pointer.Fallback(input.IsImmortal, DefaultIsImmortal),
		BenevolenceFactor:   pointer.Fallback(input.BenevolenceFactor, DefaultFactor),
		ArbitrarinessFactor: pointer.Fallback(input.ArbitrarinessFactor, DefaultFactor),
		Headshot:            input.Headshot,
		FatherID:            input.FatherID,
		MotherID:            input.MotherID,
		SpouseID:            input.SpouseID,
	}
}

func validateHero(hero *Hero) error {
	validator := &validate.Validator{}
	validator.
		Required(FieldName, hero.Name).
		MaxLen(FieldName, hero.Name, MaxNameLength).
		ID(FieldCategoryID, hero.CategoryID).
		SmallUint(FieldBenevolenceFactor, hero.BenevolenceFactor).
		SmallUint(FieldArbitrarinessFactor, hero.ArbitrarinessFactor)

	if hero.Headshot != nil {
		validator.
			Custom(FieldHeadshot, !strings.HasPrefix(*hero.Headshot, HeadshotDir), "Must be a path under "+HeadshotDir).
			MaxLen(FieldHeadshot, *hero.Headshot, MaxHeadshot)
	}

	relatives := []struct {
		field string
		id    *int
	}{
		{FieldFatherID, hero.FatherID},
		{FieldMotherID, hero.MotherID},
		{FieldSpouseID, hero.SpouseID},
	}
	for _, relative := range relatives {
		if relative.id == nil {
			continue
		}
		validator.ID(relative.field, *relative.id)
		validator.Custom(relative.field, hero.ID != 0 && *relative.id == hero.ID, "A hero cannot be related to itself")
	}

	return validator.Err()
}

// # Acquaintances

func (service *Service) GetAcquaintance(context context.Context, heroID int) (*Acquaintance, error) {
	acquaintance, err := service.repo.GetAcquaintance(context, heroID)
	if err != nil {
		return nil, dberr.NotFound(err, "Acquaintance")
	}
	return acquaintance, nil
}

/*
CreateAcquaintance opens the acquaintance record of a hero together with its
initial links.

Returns:
  - CONFLICT if the hero already has one
  - UNPROCESSABLE if the hero or any linked character does not exist
*/
func (service *Service) CreateAcquaintance(context context.Context, heroID int, input AcquaintanceInput) (*Acquaintance, error) {
	validator := &validate.Validator{}
	groups := []struct {
		field string
		ids   []int
	}{
		{"friend_ids", input.FriendIDs},
		{"detractor_ids", input.DetractorIDs},
		{"main_antagonist_ids", input.AntagonistIDs},
	}
	for _, group := range groups {
		for _, id := range group.ids {
			validator.ID(group.field, id)
		}
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	acquaintance := &Acquaintance{
		HeroID:        heroID,
		FriendIDs:     dedupe(input.FriendIDs),
		DetractorIDs:  dedupe(input.DetractorIDs),
		AntagonistIDs: dedupe(input.AntagonistIDs),
	}

	if err := service.repo.CreateAcquaintance(context, acquaintance); err != nil {
		if apperr.HasCode(err, apperr.CodeConflict) {
			return nil, apperr.Conflict("Hero already has an acquaintance record").WithCause(err)
		}
		return nil, err
	}

	service.logger.InfoContext(context, "acquaintance_created", slog.Int("hero_id", heroID))
	return acquaintance, nil
}

func (service *Service) DeleteAcquaintance(context context.Context, heroID int) error {
	if err := service.repo.DeleteAcquaintance(context, heroID); err != nil {
		return dberr.NotFound(err, "Acquaintance")
	}

	service.logger.WarnContext(context, "acquaintance_deleted", slog.Int("hero_id", heroID))
	return nil
}

// AddLink records otherID as a friend, detractor or main antagonist of heroID.
func (service *Service) AddLink(context context.Context, heroID int, kind LinkKind, otherID int) error {
	if otherID <= 0 {
		return validate.FieldError("other_id", "Must reference an existing record")
	}

	if err := service.repo.AddLink(context, heroID, kind, otherID); err != nil {
		return dberr.NotFound(err, "Acquaintance")
	}

	service.logger.InfoContext(context, "acquaintance_linked",
		slog.Int("hero_id", heroID), slog.String("kind", string(kind)), slog.Int("other_id", otherID))
	return nil
}

func (service *Service) RemoveLink(context context.Context, heroID int, kind LinkKind, otherID int) error {
	if err := service.repo.RemoveLink(context, heroID, kind, otherID); err != nil {
		return dberr.NotFound(err, "Acquaintance link")
	}

	service.logger.InfoContext(context, "acquaintance_unlinked",
		slog.Int("hero_id", heroID), slog.String("kind", string(kind)), slog.Int("other_id", otherID))
	return nil
}

func dedupe(ids []int) []int {
	seen := make(map[int]struct{}, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
