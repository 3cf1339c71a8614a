// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// CoreArticleTable represents the 'core.article' table
type CoreArticleTable struct {
	Table      string
	ID         string
	Headline   string
	PubDate    string
	ReporterID string
	Slug       string
}

// CoreArticle is the schema definition for core.article
var CoreArticle = CoreArticleTable{
	Table:      "core.article",
	ID:         "id",
	Headline:   "headline",
	PubDate:    "pubdate",
	ReporterID: "reporterid",
	Slug:       "slug",
}
