// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

//go:build integration

package event_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/epicdb/internal/core/epic"
	"github.com/taibuivan/epicdb/internal/core/event"
	"github.com/taibuivan/epicdb/internal/core/hero"
	"github.com/taibuivan/epicdb/internal/core/reference"
	"github.com/taibuivan/epicdb/internal/platform/dberr"
	"github.com/taibuivan/epicdb/internal/platform/testdb"
	"github.com/taibuivan/epicdb/pkg/pointer"
	"github.com/taibuivan/epicdb/pkg/uuid"
)

func TestPostgresRepository_EpicEvents(t *testing.T) {
	pool := testdb.New(t)
	ctx := context.Background()

	category := &reference.Category{Name: "Argonauts"}
	require.NoError(t, reference.NewPostgresRepository(pool).CreateCategory(ctx, category))

	heroes := hero.NewPostgresRepository(pool)
	jason := &hero.Hero{Name: "Jason", CategoryID: category.ID, BenevolenceFactor: 60, ArbitrarinessFactor: 40}
	require.NoError(t, heroes.CreateHero(ctx, jason))

	epics := epic.NewPostgresRepository(pool)
	argonautica := &epic.Epic{Name: "Argonautica", HeroIDs: []int{jason.ID}, VillainIDs: []int{}}
	require.NoError(t, epics.CreateEpic(ctx, argonautica))

	// Adding an existing participant is a no-op.
	require.NoError(t, epics.AddParticipant(ctx, argonautica.ID, epic.RoleHero, jason.ID))

	gotEpic, err := epics.GetEpic(ctx, argonautica.ID)
	require.NoError(t, err)
	assert.Equal(t, []int{jason.ID}, gotEpic.HeroIDs)
	assert.Empty(t, gotEpic.VillainIDs)

	repo := event.NewPostgresRepository(pool)

	fleece := &event.Event{ID: uuid.New(), EpicID: argonautica.ID, Details: "Golden fleece taken", YearsAgo: 3200}
	voyage := &event.Event{ID: uuid.New(), EpicID: argonautica.ID, Details: "Argo sets sail", YearsAgo: 3201}
	require.NoError(t, repo.CreateEvent(ctx, fleece))
	require.NoError(t, repo.CreateEvent(ctx, voyage))

	events, total, err := repo.ListEvents(ctx, event.Filter{EpicID: pointer.To(argonautica.ID)}, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Equal(t, voyage.ID, events[0].ID)

	participant := &event.Participant{EventID: fleece.ID, HeroID: jason.ID, IsPrimary: true}
	require.NoError(t, repo.AddParticipant(ctx, participant))
	assert.NotZero(t, participant.ID)

	participants, err := repo.ListParticipants(ctx, fleece.ID)
	require.NoError(t, err)
	require.Len(t, participants, 1)
	assert.True(t, participants[0].IsPrimary)

	// Deleting the epic cascades through events to participants.
	require.NoError(t, epics.DeleteEpic(ctx, argonautica.ID))

	_, err = repo.GetEvent(ctx, fleece.ID)
	assert.ErrorIs(t, err, dberr.ErrNotFound)

	participants, err = repo.ListParticipants(ctx, fleece.ID)
	require.NoError(t, err)
	assert.Empty(t, participants)
}
