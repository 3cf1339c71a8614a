// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package slug derives ASCII URL slugs from arbitrary Unicode strings.
//
// # Usage
//
// Articles store a slug derived from their headline on every save
// (e.g., "Hero Saves the Day!" becomes "hero-saves-the-day").
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// disallowed matches characters that are neither word characters,
	// whitespace nor hyphens. They are deleted, not replaced.
	disallowed = regexp.MustCompile(`[^a-z0-9_\s-]`)

	// separators matches runs of whitespace and hyphens.
	separators = regexp.MustCompile(`[-\s]+`)
)

// From converts an arbitrary Unicode string into a URL-safe ASCII slug.
//
// # Transformation Pipeline
//
//  1. Normalizes to NFKD (é → e + combining acute, ﬁ → fi).
//  2. Drops every non-ASCII rune, combining marks included.
//  3. Converts to lowercase.
//  4. Deletes characters other than [a-z0-9_], whitespace and hyphens
//     ("Zeus's" → "zeuss", "U.S.A." → "usa").
//  5. Collapses each run of whitespace and hyphens into one hyphen.
//  6. Trims leading and trailing hyphens and underscores.
//
// Underscores are kept ("hero_of_the_year" is already a slug). The result
// is either empty or matches ^[a-z0-9_]+(-[a-z0-9_]+)*$, and From is
// idempotent.
func From(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.Predicate(func(r rune) bool {
		return r > unicode.MaxASCII
	})))
	result, _, err := transform.String(t, s)
	if err != nil {
		result = s
	}

	result = strings.ToLower(result)
	result = disallowed.ReplaceAllString(result, "")
	result = separators.ReplaceAllString(result, "-")

	return strings.Trim(result, "-_")
}

// FromMax is [From] truncated to at most max bytes, without a trailing
// hyphen or underscore.
func FromMax(s string, max int) string {
	result := From(s)
	if max <= 0 || len(result) <= max {
		return result
	}

	// From only emits ASCII, so byte slicing is rune-safe.
	return strings.TrimRight(result[:max], "-_")
}
