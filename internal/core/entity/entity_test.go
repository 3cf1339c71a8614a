// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package entity_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/epicdb/internal/core/entity"
	"github.com/taibuivan/epicdb/internal/platform/apperr"
	"github.com/taibuivan/epicdb/internal/platform/testutil"
	"github.com/taibuivan/epicdb/internal/platform/validate"
	"github.com/taibuivan/epicdb/pkg/pointer"
)

func validEntity() entity.Entity {
	return entity.Entity{
		Name:        "Medusa",
		CategoryID:  1,
		OriginID:    2,
		Gender:      entity.GenderFemale,
		Description: "Gorgon whose gaze turns onlookers to stone.",
	}
}

/*
TestEntity_Validate covers the shared character rules.
*/
func TestEntity_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*entity.Entity)
		field  string
	}{
		{"valid", func(*entity.Entity) {}, ""},
		{"missing_name", func(e *entity.Entity) { e.Name = "" }, entity.FieldName},
		{"long_alt_name", func(e *entity.Entity) { e.AlternativeName = pointer.To(string(make([]rune, 101))) }, entity.FieldAlternativeName},
		{"no_category", func(e *entity.Entity) { e.CategoryID = 0 }, entity.FieldCategoryID},
		{"no_origin", func(e *entity.Entity) { e.OriginID = -1 }, entity.FieldOriginID},
		{"bad_gender", func(e *entity.Entity) { e.Gender = "female" }, entity.FieldGender},
		{"no_description", func(e *entity.Entity) { e.Description = "" }, entity.FieldDescription},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := validEntity()
			tt.mutate(&e)

			err := e.Validate(&validate.Validator{}).Err()
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}

			ae := apperr.As(err)
			require.NotNil(t, ae)
			require.Len(t, ae.Details, 1)
			assert.Equal(t, tt.field, ae.Details[0].Field)
		})
	}
}

/*
TestEntity_Touch truncates to the date and keeps AddedBy for anonymous saves.
*/
func TestEntity_Touch(t *testing.T) {
	e := validEntity()
	e.AddedBy = pointer.To("original")

	e.Touch(time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC), nil)
	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), e.AddedOn)
	assert.Equal(t, "original", *e.AddedBy)

	e.Touch(time.Now(), pointer.To("editor"))
	assert.Equal(t, "editor", *e.AddedBy)
	assert.Equal(t, "Medusa", e.String())
}

type stubRepository struct {
	filter entity.Filter
	limit  int
	offset int
}

func (s *stubRepository) ListAll(_ context.Context, filter entity.Filter, limit, offset int) ([]*entity.AllEntity, int, error) {
	s.filter, s.limit, s.offset = filter, limit, offset
	return []*entity.AllEntity{{ID: 1, Name: "Hades", Kind: entity.KindVillain}}, 1, nil
}

/*
TestHandler_ListEntities passes filters through and rejects unknown kinds.
*/
func TestHandler_ListEntities(t *testing.T) {
	repo := &stubRepository{}
	routes := entity.NewHandler(entity.NewService(repo)).Routes()

	rec := testutil.Do(routes, http.MethodGet, "/?kind=villain&q=had&page=2&limit=10", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, entity.Filter{Kind: entity.KindVillain, Name: "had"}, repo.filter)
	assert.Equal(t, 10, repo.limit)
	assert.Equal(t, 10, repo.offset)

	items := testutil.Data[[]entity.AllEntity](t, rec)
	require.Len(t, items, 1)
	assert.Equal(t, "Hades", items[0].Name)

	rec = testutil.Do(routes, http.MethodGet, "/?kind=god", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
