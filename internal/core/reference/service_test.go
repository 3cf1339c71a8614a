// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reference_test

import (
	"context"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/epicdb/internal/core/reference"
	"github.com/taibuivan/epicdb/internal/platform/apperr"
	"github.com/taibuivan/epicdb/internal/platform/dberr"
	"github.com/taibuivan/epicdb/internal/platform/testutil"
	"github.com/taibuivan/epicdb/pkg/pagination"
)

// memoryRepository is an in-memory [reference.Repository].
type memoryRepository struct {
	mu         sync.Mutex
	nextID     int
	categories map[int]reference.Category
	origins    map[int]reference.Origin
	listCalls  int
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{categories: map[int]reference.Category{}, origins: map[int]reference.Origin{}}
}

func (m *memoryRepository) ListCategories(_ context.Context, limit, offset int) ([]*reference.Category, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listCalls++

	all := make([]*reference.Category, 0, len(m.categories))
	for _, c := range m.categories {
		all = append(all, &c)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })

	end := min(offset+limit, len(all))
	if offset > len(all) {
		return nil, len(all), nil
	}
	return all[offset:end], len(all), nil
}

func (m *memoryRepository) GetCategory(_ context.Context, id int) (*reference.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.categories[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return &c, nil
}

func (m *memoryRepository) CreateCategory(_ context.Context, c *reference.Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	c.ID = m.nextID
	m.categories[c.ID] = *c
	return nil
}

func (m *memoryRepository) UpdateCategory(_ context.Context, c *reference.Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.categories[c.ID]; !ok {
		return dberr.ErrNotFound
	}
	m.categories[c.ID] = *c
	return nil
}

func (m *memoryRepository) DeleteCategory(_ context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.categories[id]; !ok {
		return dberr.ErrNotFound
	}
	delete(m.categories, id)
	return nil
}

func (m *memoryRepository) ListOrigins(_ context.Context, limit, offset int) ([]*reference.Origin, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	all := make([]*reference.Origin, 0, len(m.origins))
	for _, o := range m.origins {
		all = append(all, &o)
	}
	return all, len(all), nil
}

func (m *memoryRepository) GetOrigin(_ context.Context, id int) (*reference.Origin, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.origins[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return &o, nil
}

func (m *memoryRepository) CreateOrigin(_ context.Context, o *reference.Origin) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	o.ID = m.nextID
	m.origins[o.ID] = *o
	return nil
}

func (m *memoryRepository) UpdateOrigin(_ context.Context, o *reference.Origin) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.origins[o.ID]; !ok {
		return dberr.ErrNotFound
	}
	m.origins[o.ID] = *o
	return nil
}

func (m *memoryRepository) DeleteOrigin(_ context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.origins[id]; !ok {
		return dberr.ErrNotFound
	}
	delete(m.origins, id)
	return nil
}

func newService() (*reference.Service, *memoryRepository) {
	repo := newMemoryRepository()
	return reference.NewService(repo, nil, testutil.Logger()), repo
}

/*
TestService_CategoryLifecycle covers create, list, rename and delete.
*/
func TestService_CategoryLifecycle(t *testing.T) {
	ctx := context.Background()
	service, _ := newService()

	greek := &reference.Category{Name: "Greek"}
	require.NoError(t, service.CreateCategory(ctx, greek))
	require.NoError(t, service.CreateCategory(ctx, &reference.Category{Name: "Norse"}))
	assert.NotZero(t, greek.ID)
	assert.Equal(t, "Greek", greek.String())

	items, total, err := service.ListCategories(ctx, pagination.Params{Page: 1, Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, items, 1)
	assert.Equal(t, "Greek", items[0].Name)

	require.NoError(t, service.UpdateCategory(ctx, greek.ID, &reference.Category{Name: "Hellenic"}))
	got, err := service.GetCategory(ctx, greek.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hellenic", got.Name)

	require.NoError(t, service.DeleteCategory(ctx, greek.ID))
	_, err = service.GetCategory(ctx, greek.ID)
	assert.Equal(t, "Category not found", err.Error())
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
}

/*
TestService_NameValidation rejects empty and oversized names.
*/
func TestService_NameValidation(t *testing.T) {
	ctx := context.Background()
	service, _ := newService()

	err := service.CreateCategory(ctx, &reference.Category{Name: "  "})
	assert.True(t, apperr.HasCode(err, apperr.CodeValidation))

	long := make([]byte, reference.MaxNameLength+1)
	for i := range long {
		long[i] = 'a'
	}
	err = service.CreateOrigin(ctx, &reference.Origin{Name: string(long)})
	assert.True(t, apperr.HasCode(err, apperr.CodeValidation))
}

/*
TestService_OriginMissing maps missing rows to a named 404.
*/
func TestService_OriginMissing(t *testing.T) {
	ctx := context.Background()
	service, _ := newService()

	err := service.UpdateOrigin(ctx, 99, &reference.Origin{Name: "Asgard"})
	assert.Equal(t, "Origin not found", err.Error())

	err = service.DeleteOrigin(ctx, 99)
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
}
