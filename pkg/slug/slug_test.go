// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slug_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/epicdb/pkg/slug"
)

var slugShape = regexp.MustCompile(`^[a-z0-9_]+(-[a-z0-9_]+)*$`)

/*
TestFrom checks the headline normalization rules.
*/
func TestFrom(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"headline_with_punctuation", "Hero Saves the Day!", "hero-saves-the-day"},
		{"already_a_slug", "hero-saves-the-day", "hero-saves-the-day"},
		{"accents", "Épopée de Héraclès", "epopee-de-heracles"},
		{"ligature", "ﬁnal battle", "final-battle"},
		{"collapses_separators", "  Thor --- & Loki  ", "thor-loki"},
		{"underscores_kept", "hero_of_the_year", "hero_of_the_year"},
		{"apostrophe_deleted", "Zeus's Wrath", "zeuss-wrath"},
		{"dotted_abbreviation", "U.S.A. heroes", "usa-heroes"},
		{"punctuation_between_words", "Thor/Loki", "thorloki"},
		{"edge_underscores", "__init__ -", "init"},
		{"digits", "300 Spartans", "300-spartans"},
		{"non_latin_dropped", "孫悟空 Sun Wukong", "sun-wukong"},
		{"only_symbols", "!!! ???", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.From(tt.input))
		})
	}
}

/*
TestFrom_Properties verifies idempotency and output shape over a mixed corpus.
*/
func TestFrom_Properties(t *testing.T) {
	inputs := []string{
		"Hero Saves the Day!", "Ragnarök", "  leading and trailing  ", "MiXeD CaSe",
		"tab\tand\nnewline", "a--b__c", "Ōdin & Frigg", "x", "a - _b", "Zeus's _wrath_",
	}

	for _, input := range inputs {
		got := slug.From(input)
		assert.Equal(t, got, slug.From(got), "idempotent for %q", input)
		if got != "" {
			assert.Regexp(t, slugShape, got)
		}
	}
}

/*
TestFromMax verifies truncation never leaves a dangling hyphen.
*/
func TestFromMax(t *testing.T) {
	headline := strings.Repeat("word ", 20)

	got := slug.FromMax(headline, 50)
	assert.LessOrEqual(t, len(got), 50)
	assert.False(t, strings.HasSuffix(got, "-"))
	assert.True(t, strings.HasPrefix(slug.From(headline), got))

	assert.Equal(t, "short", slug.FromMax("Short", 50))
	assert.Equal(t, "no-limit", slug.FromMax("No Limit", 0))
}
