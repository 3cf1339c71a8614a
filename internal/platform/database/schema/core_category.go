// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// CoreCategoryTable represents the 'core.category' table
type CoreCategoryTable struct {
	Table string
	ID    string
	Name  string
}

// CoreCategory is the schema definition for core.category
var CoreCategory = CoreCategoryTable{
	Table: "core.category",
	ID:    "id",
	Name:  "name",
}

// CoreOrigin is the schema definition for core.origin. It shares the
// category layout.
var CoreOrigin = CoreCategoryTable{
	Table: "core.origin",
	ID:    "id",
	Name:  "name",
}
