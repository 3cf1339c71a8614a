// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package event_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/epicdb/internal/core/event"
	"github.com/taibuivan/epicdb/internal/platform/apperr"
	"github.com/taibuivan/epicdb/internal/platform/dberr"
	"github.com/taibuivan/epicdb/internal/platform/sec"
	"github.com/taibuivan/epicdb/internal/platform/testutil"
	"github.com/taibuivan/epicdb/internal/platform/validate"
	"github.com/taibuivan/epicdb/pkg/pagination"
	"github.com/taibuivan/epicdb/pkg/pointer"
	"github.com/taibuivan/epicdb/pkg/uuid"
)

// memoryRepository rejects events of unknown epics and cascades participant
// rows when an event is deleted.
type memoryRepository struct {
	epics        map[int]bool
	events       map[string]*event.Event
	participants []*event.Participant
	nextID       int
}

func newService() *event.Service {
	repo := &memoryRepository{epics: map[int]bool{1: true, 2: true}, events: map[string]*event.Event{}}
	return event.NewService(repo, testutil.Logger())
}

func (m *memoryRepository) ListEvents(_ context.Context, filter event.Filter, _, _ int) ([]*event.Event, int, error) {
	out := []*event.Event{}
	for _, e := range m.events {
		if filter.EpicID != nil && e.EpicID != *filter.EpicID {
			continue
		}
		out = append(out, e)
	}
	return out, len(out), nil
}

func (m *memoryRepository) GetEvent(_ context.Context, id string) (*event.Event, error) {
	if e, ok := m.events[id]; ok {
		return e, nil
	}
	return nil, dberr.ErrNotFound
}

func (m *memoryRepository) CreateEvent(_ context.Context, e *event.Event) error {
	if !m.epics[e.EpicID] {
		return apperr.Unprocessable("Referenced record does not exist")
	}
	m.events[e.ID] = e
	return nil
}

func (m *memoryRepository) UpdateEvent(_ context.Context, e *event.Event) error {
	if _, ok := m.events[e.ID]; !ok {
		return dberr.ErrNotFound
	}
	m.events[e.ID] = e
	return nil
}

func (m *memoryRepository) DeleteEvent(_ context.Context, id string) error {
	if _, ok := m.events[id]; !ok {
		return dberr.ErrNotFound
	}
	delete(m.events, id)

	kept := m.participants[:0]
	for _, p := range m.participants {
		if p.EventID != id {
			kept = append(kept, p)
		}
	}
	m.participants = kept
	return nil
}

func (m *memoryRepository) ListParticipants(_ context.Context, eventID string) ([]*event.Participant, error) {
	out := []*event.Participant{}
	for _, p := range m.participants {
		if p.EventID == eventID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memoryRepository) AddParticipant(_ context.Context, p *event.Participant) error {
	if _, ok := m.events[p.EventID]; !ok {
		return apperr.Unprocessable("Referenced record does not exist")
	}
	m.nextID++
	p.ID = m.nextID
	m.participants = append(m.participants, p)
	return nil
}

func (m *memoryRepository) RemoveParticipant(_ context.Context, eventID string, participantID int) error {
	for i, p := range m.participants {
		if p.EventID == eventID && p.ID == participantID {
			m.participants = append(m.participants[:i], m.participants[i+1:]...)
			return nil
		}
	}
	return dberr.ErrNotFound
}

/*
TestCreateEvent_GeneratesKey assigns a server-side UUID and validates years ago.
*/
func TestCreateEvent_GeneratesKey(t *testing.T) {
	service := newService()
	ctx := context.Background()

	created, err := service.CreateEvent(ctx, event.Input{EpicID: 1, Details: "Fall of Troy", YearsAgo: pointer.To(3200)})
	require.NoError(t, err)
	assert.True(t, uuid.Valid(created.ID))

	other, err := service.CreateEvent(ctx, event.Input{EpicID: 1, Details: "Wooden horse", YearsAgo: pointer.To(0)})
	require.NoError(t, err)
	assert.NotEqual(t, created.ID, other.ID)

	_, err = service.CreateEvent(ctx, event.Input{EpicID: 1, Details: "Nothing"})
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, event.FieldYearsAgo, ae.Details[0].Field)

	_, err = service.CreateEvent(ctx, event.Input{EpicID: 1, Details: "Future", YearsAgo: pointer.To(-1)})
	assert.True(t, apperr.HasCode(err, apperr.CodeValidation))

	_, err = service.CreateEvent(ctx, event.Input{EpicID: 1, Details: "Overflow", YearsAgo: pointer.To(validate.MaxInteger + 1)})
	assert.True(t, apperr.HasCode(err, apperr.CodeValidation))

	_, err = service.CreateEvent(ctx, event.Input{EpicID: 9, Details: "Lost", YearsAgo: pointer.To(1)})
	assert.True(t, apperr.HasCode(err, apperr.CodeUnprocessable))
}

/*
TestListEvents_ByEpic restricts the listing to one epic.
*/
func TestListEvents_ByEpic(t *testing.T) {
	service := newService()
	ctx := context.Background()

	for _, epicID := range []int{1, 1, 2} {
		_, err := service.CreateEvent(ctx, event.Input{EpicID: epicID, Details: "x", YearsAgo: pointer.To(1)})
		require.NoError(t, err)
	}

	params := pagination.Params{Page: 1, Limit: 20}
	_, total, err := service.ListEvents(ctx, event.Filter{EpicID: pointer.To(1)}, params)
	require.NoError(t, err)
	assert.Equal(t, 2, total)

	_, total, err = service.ListEvents(ctx, event.Filter{}, params)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
}

/*
TestParticipants_Lifecycle adds, lists and removes the heroes of an event.
*/
func TestParticipants_Lifecycle(t *testing.T) {
	service := newService()
	ctx := context.Background()

	created, err := service.CreateEvent(ctx, event.Input{EpicID: 1, Details: "Duel", YearsAgo: pointer.To(10)})
	require.NoError(t, err)

	_, err = service.AddParticipant(ctx, created.ID, event.ParticipantInput{HeroID: 4})
	assert.True(t, apperr.HasCode(err, apperr.CodeValidation))

	added, err := service.AddParticipant(ctx, created.ID, event.ParticipantInput{HeroID: 4, IsPrimary: pointer.To(true)})
	require.NoError(t, err)
	assert.True(t, added.IsPrimary)

	list, err := service.ListParticipants(ctx, created.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = service.ListParticipants(ctx, uuid.New())
	assert.Equal(t, "Event not found", err.Error())

	require.NoError(t, service.RemoveParticipant(ctx, created.ID, added.ID))
	err = service.RemoveParticipant(ctx, created.ID, added.ID)
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
}

/*
TestHandler_EventRoutes rejects malformed keys and filters by epic.
*/
func TestHandler_EventRoutes(t *testing.T) {
	routes := event.NewHandler(newService()).Routes()

	rec := testutil.Do(routes, http.MethodPost, "/", `{"id":"fixed","epic_id":1,"details":"x","years_ago":1}`, sec.RoleMember)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = testutil.Do(routes, http.MethodPost, "/", `{"epic_id":1,"details":"Labours","years_ago":3000}`, sec.RoleMember)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := testutil.Data[event.Event](t, rec)

	rec = testutil.Do(routes, http.MethodGet, "/not-a-uuid", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = testutil.Do(routes, http.MethodGet, "/?epic_id=1", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, testutil.Data[[]event.Event](t, rec), 1)

	rec = testutil.Do(routes, http.MethodPost, "/"+created.ID+"/heroes", `{"hero_id":2,"is_primary":false}`, sec.RoleMember)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = testutil.Do(routes, http.MethodDelete, "/"+created.ID, "", sec.RoleAdmin)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
