// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// AllEntityTable represents the 'entities_entity' view
type AllEntityTable struct {
	Table string
	ID    string
	Name  string
	Kind  string
}

// AllEntity is the schema definition for entities_entity
var AllEntity = AllEntityTable{
	Table: "entities_entity",
	ID:    "id",
	Name:  "name",
	Kind:  "kind",
}

// TempUserTable represents the externally managed 'temp_user' table
type TempUserTable struct {
	Table     string
	ID        string
	FirstName string
}

// TempUser is the schema definition for temp_user
var TempUser = TempUserTable{
	Table:     "temp_user",
	ID:        "id",
	FirstName: "first_name",
}
