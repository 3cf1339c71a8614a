// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package event

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/epicdb/internal/platform/dberr"
	"github.com/taibuivan/epicdb/internal/platform/validate"
	"github.com/taibuivan/epicdb/pkg/pagination"
	"github.com/taibuivan/epicdb/pkg/pointer"
	"github.com/taibuivan/epicdb/pkg/uuid"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// # Events

// ListEvents lists events, optionally restricted to one epic.
func (service *Service) ListEvents(context context.Context, filter Filter, params pagination.Params) ([]*Event, int, error) {
	return service.repo.ListEvents(context, filter, params.Limit, params.Offset())
}

func (service *Service) GetEvent(context context.Context, id string) (*Event, error) {
	event, err := service.repo.GetEvent(context, id)
	if err != nil {
		return nil, dberr.NotFound(err, "Event")
	}
	return event, nil
}

/*
CreateEvent stores a new event under a freshly generated UUIDv7 key.

Returns UNPROCESSABLE if the epic does not exist.
*/
func (service *Service) CreateEvent(context context.Context, input Input) (*Event, error) {
	event, err := fromInput(uuid.New(), input)
	if err != nil {
		return nil, err
	}

	if err := service.repo.CreateEvent(context, event); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "event_created", slog.String("event_id", event.ID), slog.Int("epic_id", event.EpicID))
	return event, nil
}

func (service *Service) UpdateEvent(context context.Context, id string, input Input) (*Event, error) {
	event, err := fromInput(id, input)
	if err != nil {
		return nil, err
	}

	if err := service.repo.UpdateEvent(context, event); err != nil {
		return nil, dberr.NotFound(err, "Event")
	}

	service.logger.InfoContext(context, "event_updated", slog.String("event_id", id))
	return event, nil
}

func (service *Service) DeleteEvent(context context.Context, id string) error {
	if err := service.repo.DeleteEvent(context, id); err != nil {
		return dberr.NotFound(err, "Event")
	}

	service.logger.WarnContext(context, "event_deleted", slog.String("event_id", id))
	return nil
}

func fromInput(id string, input Input) (*Event, error) {
	event := &Event{
		ID:       id,
		EpicID:   input.EpicID,
		Details:  strings.TrimSpace(input.Details),
		YearsAgo: pointer.Val(input.YearsAgo),
	}

	validator := &validate.Validator{}
	validator.
		ID(FieldEpicID, event.EpicID).
		Required(FieldDetails, event.Details).
		Custom(FieldYearsAgo, input.YearsAgo == nil, "This field is required").
		Range(FieldYearsAgo, event.YearsAgo, 0, validate.MaxInteger)
	if err := validator.Err(); err != nil {
		return nil, err
	}
	return event, nil
}

// # Participants

// ListParticipants returns the heroes of event id, primary ones first.
func (service *Service) ListParticipants(context context.Context, eventID string) ([]*Participant, error) {
	if _, err := service.GetEvent(context, eventID); err != nil {
		return nil, err
	}
	return service.repo.ListParticipants(context, eventID)
}

/*
AddParticipant records a hero taking part in an event.

Returns UNPROCESSABLE if the event or the hero does not exist.
*/
func (service *Service) AddParticipant(context context.Context, eventID string, input ParticipantInput) (*Participant, error) {
	validator := &validate.Validator{}
	validator.
		ID(FieldHeroID, input.HeroID).
		Custom(FieldIsPrimary, input.IsPrimary == nil, "This field is required")
	if err := validator.Err(); err != nil {
		return nil, err
	}

	participant := &Participant{EventID: eventID, HeroID: input.HeroID, IsPrimary: *input.IsPrimary}
	if err := service.repo.AddParticipant(context, participant); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "event_hero_added",
		slog.String("event_id", eventID), slog.Int("hero_id", participant.HeroID), slog.Bool("is_primary", participant.IsPrimary))
	return participant, nil
}

func (service *Service) RemoveParticipant(context context.Context, eventID string, participantID int) error {
	if err := service.repo.RemoveParticipant(context, eventID, participantID); err != nil {
		return dberr.NotFound(err, "Event participant")
	}

	service.logger.InfoContext(context, "event_hero_removed", slog.String("event_id", eventID), slog.Int("participant_id", participantID))
	return nil
}
