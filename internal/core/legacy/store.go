// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package legacy

import "context"

// Repository defines the data access contract for the auxiliary tables.
type Repository interface {

	// ListTempUsers reads temp_user. It fails if the owning system has not
	// created the table.
	ListTempUsers(context context.Context, limit, offset int) ([]*TempUser, int, error)

	ListColumnNames(context context.Context, limit, offset int) ([]*ColumnName, int, error)
	GetColumnName(context context.Context, id int) (*ColumnName, error)
	CreateColumnName(context context.Context, c *ColumnName) error
	DeleteColumnName(context context.Context, id int) error
}
