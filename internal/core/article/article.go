// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package article manages news articles written by registered users.

# Slugs

An article's slug is derived from its headline on every save and is never
taken from the client. Slugs are indexed but not unique.
*/
package article

import (
	"encoding/json"
	"time"
)

// Article is a row of core.article.
type Article struct {
	ID         int       `json:"id"`
	Headline   string    `json:"headline"`
	PubDate    time.Time `json:"pub_date"`
	ReporterID string    `json:"reporter_id"`
	Slug       string    `json:"slug"`
}

func (a Article) String() string { return a.Headline }

// articleJSON carries PubDate in the DATE column layout.
type articleJSON struct {
	ID         int    `json:"id"`
	Headline   string `json:"headline"`
	PubDate    string `json:"pub_date"`
	ReporterID string `json:"reporter_id"`
	Slug       string `json:"slug"`
}

// MarshalJSON writes pub_date as YYYY-MM-DD.
func (a Article) MarshalJSON() ([]byte, error) {
	return json.Marshal(articleJSON{
		ID:         a.ID,
		Headline:   a.Headline,
		PubDate:    a.PubDate.Format(DateLayout),
		ReporterID: a.ReporterID,
		Slug:       a.Slug,
	})
}

// UnmarshalJSON reads the layout written by MarshalJSON.
func (a *Article) UnmarshalJSON(data []byte) error {
	var raw articleJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	pubDate, err := time.Parse(DateLayout, raw.PubDate)
	if err != nil {
		return err
	}

	*a = Article{ID: raw.ID, Headline: raw.Headline, PubDate: pubDate, ReporterID: raw.ReporterID, Slug: raw.Slug}
	return nil
}

// Input is the client payload for an article. PubDate uses the YYYY-MM-DD
// layout. ReporterID defaults to the authenticated user.
type Input struct {
	Headline   string `json:"headline"`
	PubDate    string `json:"pub_date"`
	ReporterID string `json:"reporter_id"`
}

const (
	FieldHeadline   = "headline"
	FieldPubDate    = "pub_date"
	FieldReporterID = "reporter_id"

	MaxHeadlineLength = 100
	MaxSlugLength     = 50

	DateLayout = time.DateOnly
)
