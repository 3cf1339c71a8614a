// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// CoreColumnNameTable represents the 'core.columnname' table
type CoreColumnNameTable struct {
	Table   string
	ID      string
	A       string
	Column2 string
}

// CoreColumnName is the schema definition for core.columnname.
// Field A is stored in column1.
var CoreColumnName = CoreColumnNameTable{
	Table:   "core.columnname",
	ID:      "id",
	A:       "column1",
	Column2: "column2",
}
