// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/epicdb/pkg/pagination"
)

/*
TestFromRequest covers defaulting and clamping of query parameters.
*/
func TestFromRequest(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "", 1, 20},
		{"explicit", "?page=3&limit=10", 3, 10},
		{"garbage", "?page=abc&limit=xyz", 1, 20},
		{"negative", "?page=-2&limit=0", 1, 20},
		{"over_max", "?limit=1000", 1, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", "/heroes"+tt.query, nil)
			params := pagination.FromRequest(request)

			assert.Equal(t, tt.wantPage, params.Page)
			assert.Equal(t, tt.wantLimit, params.Limit)
		})
	}
}

/*
TestParams_OffsetAndMeta checks offset arithmetic and total page rounding.
*/
func TestParams_OffsetAndMeta(t *testing.T) {
	params := pagination.Params{Page: 3, Limit: 20}
	assert.Equal(t, 40, params.Offset())

	meta := params.Meta(41)
	assert.Equal(t, 3, meta.TotalPages)
	assert.Equal(t, 41, meta.Total)

	assert.Equal(t, 0, pagination.Params{Page: 1, Limit: 20}.Offset())
	assert.Equal(t, 0, pagination.Params{Page: 1, Limit: 20}.Meta(0).TotalPages)
}
