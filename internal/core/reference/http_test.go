// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reference_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/epicdb/internal/core/reference"
	"github.com/taibuivan/epicdb/internal/platform/apperr"
	"github.com/taibuivan/epicdb/internal/platform/sec"
	"github.com/taibuivan/epicdb/internal/platform/testutil"
)

/*
TestHandler_Access checks the public/auth/moderator split.
*/
func TestHandler_Access(t *testing.T) {
	service, _ := newService()
	routes := reference.NewHandler(service).Routes()

	rec := testutil.Do(routes, http.MethodPost, "/categories", `{"name":"Greek"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = testutil.Do(routes, http.MethodPost, "/categories", `{"name":"Greek"}`, sec.RoleMember)
	assert.Equal(t, http.StatusCreated, rec.Code)
	created := testutil.Data[reference.Category](t, rec)
	assert.Equal(t, "Greek", created.Name)

	rec = testutil.Do(routes, http.MethodGet, "/categories", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = testutil.Do(routes, http.MethodDelete, "/categories/1", "", sec.RoleMember)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = testutil.Do(routes, http.MethodDelete, "/categories/1", "", sec.RoleModerator)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

/*
TestHandler_BadInput returns VALIDATION_ERROR for malformed ids and bodies.
*/
func TestHandler_BadInput(t *testing.T) {
	service, _ := newService()
	routes := reference.NewHandler(service).Routes()

	rec := testutil.Do(routes, http.MethodGet, "/origins/abc", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apperr.CodeValidation, testutil.ErrorCode(t, rec))

	rec = testutil.Do(routes, http.MethodPost, "/origins", `{"name":`, sec.RoleMember)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = testutil.Do(routes, http.MethodGet, "/origins/7", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apperr.CodeNotFound, testutil.ErrorCode(t, rec))
}
