// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// UserAccountTable represents the 'users.account' table
type UserAccountTable struct {
	Table     string
	ID        string
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      string
	CreatedAt string
	UpdatedAt string
}

// UserAccount is the schema definition for users.account
var UserAccount = UserAccountTable{
	Table:     "users.account",
	ID:        "id",
	Username:  "username",
	Email:     "email",
	Password:  "passwordhash",
	FirstName: "firstname",
	LastName:  "lastname",
	Role:      "role",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

// Columns returns the public column names (password hash excluded)
func (t UserAccountTable) Columns() []string {
	return []string{t.ID, t.Username, t.Email, t.FirstName, t.LastName, t.Role, t.CreatedAt, t.UpdatedAt}
}
