// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/epicdb/internal/platform/apperr"
	"github.com/taibuivan/epicdb/internal/platform/validate"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		hasError bool
	}{
		{"valid_string", "Hercules", false},
		{"empty_string", "", true},
		{"whitespace_only", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required("name", tt.value)

			if !tt.hasError {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
				return
			}

			ae := apperr.As(v.Err())
			require.NotNil(t, ae)
			assert.Equal(t, apperr.CodeValidation, ae.Code)
			assert.Equal(t, "name", ae.Details[0].Field)
		})
	}
}

/*
TestValidator_SmallUint enforces the SMALLINT column range.
*/
func TestValidator_SmallUint(t *testing.T) {
	tests := []struct {
		value   int
		isValid bool
	}{
		{0, true},
		{50, true},
		{validate.MaxSmallInt, true},
		{-1, false},
		{validate.MaxSmallInt + 1, false},
	}

	for _, tt := range tests {
		v := &validate.Validator{}
		v.SmallUint("benevolence_factor", tt.value)
		assert.Equal(t, !tt.isValid, v.HasErrors(), "value %d", tt.value)
	}
}

/*
TestValidator_Formats checks slug, UUID, email and choice rules.
*/
func TestValidator_Formats(t *testing.T) {
	assert.False(t, (&validate.Validator{}).Slug("slug", "hero-saves-the-day").HasErrors())
	assert.True(t, (&validate.Validator{}).Slug("slug", "Hero Saves").HasErrors())
	assert.True(t, (&validate.Validator{}).Slug("slug", "-edge-").HasErrors())
	assert.False(t, (&validate.Validator{}).Slug("slug", "hero_of_the_year").HasErrors())

	assert.False(t, (&validate.Validator{}).UUID("id", "0190a3c2-6f1e-7cc0-9a8e-3b1f2d4c5e6f").HasErrors())
	assert.True(t, (&validate.Validator{}).UUID("id", "not-a-uuid").HasErrors())

	assert.False(t, (&validate.Validator{}).Email("email", "zeus@olympus.gr").HasErrors())
	assert.True(t, (&validate.Validator{}).Email("email", "zeus@").HasErrors())

	assert.False(t, (&validate.Validator{}).OneOf("gender", "Male", "Male", "Female").HasErrors())
	assert.True(t, (&validate.Validator{}).OneOf("gender", "male", "Male", "Female").HasErrors())

}

/*
TestValidator_ID bounds SERIAL keys to the INTEGER column range.
*/
func TestValidator_ID(t *testing.T) {
	tests := []struct {
		name    string
		value   int
		isValid bool
	}{
		{"zero", 0, false},
		{"negative", -7, false},
		{"positive", 7, true},
		{"max_integer", validate.MaxInteger, true},
		{"beyond_integer", validate.MaxInteger + 1, false},
		{"beyond_uint32", 3000000000, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.ID("category_id", tt.value)
			assert.Equal(t, !tt.isValid, v.HasErrors())
			assert.Equal(t, tt.isValid, validate.ValidID(tt.value))
		})
	}
}

/*
TestValidator_Chain_Failure tests error accumulation in the chain.
*/
func TestValidator_Chain_Failure(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("name", "").
		MaxLen("name", "this name is far too long", 5).
		Custom("father_id", true, "A hero cannot be their own father").
		Err()

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Len(t, ae.Details, 3)
}
