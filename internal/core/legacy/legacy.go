// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package legacy exposes auxiliary tables kept for compatibility.

  - temp_user is owned by another system. The migrations never create it
    and this service only reads it.
  - core.columnname stores field A in a column named column1.
*/
package legacy

// TempUser is a row of the externally managed temp_user table.
type TempUser struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name"`
}

// ColumnName is a row of core.columnname.
type ColumnName struct {
	ID      int    `json:"id"`
	A       string `json:"a"`
	Column2 string `json:"column2"`
}

func (c ColumnName) String() string { return c.A }

type ColumnNameInput struct {
	A       string `json:"a"`
	Column2 string `json:"column2"`
}

const (
	FieldA       = "a"
	FieldColumn2 = "column2"

	MaxALength       = 40
	MaxColumn2Length = 50
)
