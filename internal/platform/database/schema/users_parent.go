// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// UserParentTable represents the 'users.parent' table
type UserParentTable struct {
	Table      string
	UserID     string
	FatherName string
	MotherName string
}

// UserParent is the schema definition for users.parent
var UserParent = UserParentTable{
	Table:      "users.parent",
	UserID:     "userid",
	FatherName: "fathername",
	MotherName: "mothername",
}
