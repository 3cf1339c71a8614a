// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reference

import "context"

// # Reference Data Access

// Repository defines the data access contract for categories and origins.
type Repository interface {

	// ## Category Data Access

	/*
		ListCategories retrieves a page of categories ordered by name.

		Returns:
		  - []*Category: The requested page
		  - int: Total row count for pagination metadata
		  - error: Database retrieval failures
	*/
	ListCategories(context context.Context, limit, offset int) ([]*Category, int, error)

	// GetCategory fetches a category by primary key.
	GetCategory(context context.Context, id int) (*Category, error)

	// CreateCategory inserts a row and fills c.ID.
	CreateCategory(context context.Context, c *Category) error

	// UpdateCategory renames an existing category.
	UpdateCategory(context context.Context, c *Category) error

	// DeleteCategory removes the row; heroes and villains cascade.
	DeleteCategory(context context.Context, id int) error

	// ## Origin Data Access

	ListOrigins(context context.Context, limit, offset int) ([]*Origin, int, error)
	GetOrigin(context context.Context, id int) (*Origin, error)
	CreateOrigin(context context.Context, o *Origin) error
	UpdateOrigin(context context.Context, o *Origin) error
	DeleteOrigin(context context.Context, id int) error
}
